// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wallet_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/gateway-custody/events"
	"github.com/ChainSafe/gateway-custody/lvldb"
	"github.com/ChainSafe/gateway-custody/wallet"
	"github.com/ChainSafe/gateway-custody/wire"
)

var delegateAddr = wire.BytesToAddress([]byte{0xde, 0x01})

type DelegateTestSuite struct {
	suite.Suite
	wallet   *wallet.Wallet
	db       *lvldb.LVLDB
	recorder *events.Recorder
}

func TestRunDelegateTestSuite(t *testing.T) {
	suite.Run(t, new(DelegateTestSuite))
}

func (s *DelegateTestSuite) SetupTest() {
	s.wallet, s.db, _, _, s.recorder = newTestWallet(&s.Suite)
}

func (s *DelegateTestSuite) TearDownTest() {
	_ = s.db.Close()
}

func (s *DelegateTestSuite) Test_AddDelegate_IdempotentAndAlwaysEmits() {
	s.Nil(s.wallet.AddDelegate(depositorAddr, supportedToken, delegateAddr))
	s.Nil(s.wallet.AddDelegate(depositorAddr, supportedToken, delegateAddr))

	s.Equal([]string{"DelegateAdded", "DelegateAdded"}, s.recorder.Names())
}

func (s *DelegateTestSuite) Test_AddDelegate_ZeroDelegate() {
	err := s.wallet.AddDelegate(depositorAddr, supportedToken, wire.ZeroAddress)
	s.ErrorIs(err, wallet.ErrInvalidDelegate)
}

func (s *DelegateTestSuite) Test_AddDelegate_SelfDelegation() {
	err := s.wallet.AddDelegate(depositorAddr, supportedToken, depositorAddr)
	s.ErrorIs(err, wallet.ErrSelfDelegation)
}

func (s *DelegateTestSuite) Test_AddDelegate_UnsupportedToken() {
	err := s.wallet.AddDelegate(depositorAddr, wire.BytesToAddress([]byte{0xff}), delegateAddr)
	s.ErrorIs(err, wallet.ErrTokenNotSupported)
}

func (s *DelegateTestSuite) Test_AddDelegate_DenylistedDelegate() {
	s.Nil(s.wallet.Denylist(denylisterAddr, delegateAddr))

	err := s.wallet.AddDelegate(depositorAddr, supportedToken, delegateAddr)
	s.ErrorIs(err, wallet.ErrAccountDenylisted)
}

func (s *DelegateTestSuite) Test_RemoveDelegate_NeverCreated() {
	err := s.wallet.RemoveDelegate(depositorAddr, supportedToken, delegateAddr)
	s.ErrorIs(err, wallet.ErrAccountNotInitialized)
}

func (s *DelegateTestSuite) Test_RemoveDelegate_AlreadyRevokedIsSilentNoop() {
	s.Nil(s.wallet.AddDelegate(depositorAddr, supportedToken, delegateAddr))
	s.Nil(s.wallet.RemoveDelegate(depositorAddr, supportedToken, delegateAddr))
	s.recorder.Reset()

	s.Nil(s.wallet.RemoveDelegate(depositorAddr, supportedToken, delegateAddr))
	s.Empty(s.recorder.Names())
}

func (s *DelegateTestSuite) Test_ReauthorizeAfterRevocation() {
	s.Nil(s.wallet.AddDelegate(depositorAddr, supportedToken, delegateAddr))
	s.Nil(s.wallet.RemoveDelegate(depositorAddr, supportedToken, delegateAddr))
	s.Nil(s.wallet.AddDelegate(depositorAddr, supportedToken, delegateAddr))

	s.Equal([]string{"DelegateAdded", "DelegateRemoved", "DelegateAdded"}, s.recorder.Names())
}

func (s *DelegateTestSuite) Test_DelegateOps_WhilePaused() {
	s.Nil(s.wallet.Pause(pauserAddr))

	s.ErrorIs(s.wallet.AddDelegate(depositorAddr, supportedToken, delegateAddr), wallet.ErrProgramPaused)
	s.ErrorIs(s.wallet.RemoveDelegate(depositorAddr, supportedToken, delegateAddr), wallet.ErrProgramPaused)
}

type DenylistTestSuite struct {
	suite.Suite
	wallet   *wallet.Wallet
	db       *lvldb.LVLDB
	recorder *events.Recorder
}

func TestRunDenylistTestSuite(t *testing.T) {
	suite.Run(t, new(DenylistTestSuite))
}

func (s *DenylistTestSuite) SetupTest() {
	s.wallet, s.db, _, _, s.recorder = newTestWallet(&s.Suite)
}

func (s *DenylistTestSuite) TearDownTest() {
	_ = s.db.Close()
}

func (s *DenylistTestSuite) Test_Denylist_IdempotentAndAlwaysEmits() {
	s.Nil(s.wallet.Denylist(denylisterAddr, depositorAddr))
	s.Nil(s.wallet.Denylist(denylisterAddr, depositorAddr))

	denied, err := s.wallet.IsDenylisted(depositorAddr)
	s.Nil(err)
	s.True(denied)
	s.Equal([]string{"Denylisted", "Denylisted"}, s.recorder.Names())
}

func (s *DenylistTestSuite) Test_Denylist_WrongRole() {
	err := s.wallet.Denylist(ownerAddr, depositorAddr)
	s.ErrorIs(err, wallet.ErrNotDenylister)
}

func (s *DenylistTestSuite) Test_Undenylist_NeverDenylisted() {
	err := s.wallet.Undenylist(denylisterAddr, depositorAddr)
	s.ErrorIs(err, wallet.ErrAccountNotInitialized)
}

func (s *DenylistTestSuite) Test_Undenylist_ClearsEntry() {
	s.Nil(s.wallet.Denylist(denylisterAddr, depositorAddr))
	s.Nil(s.wallet.Undenylist(denylisterAddr, depositorAddr))

	denied, err := s.wallet.IsDenylisted(depositorAddr)
	s.Nil(err)
	s.False(denied)
}

func (s *DenylistTestSuite) Test_Denylist_AvailableWhilePaused() {
	s.Nil(s.wallet.Pause(pauserAddr))

	s.Nil(s.wallet.Denylist(denylisterAddr, depositorAddr))
	s.Nil(s.wallet.Undenylist(denylisterAddr, depositorAddr))
}
