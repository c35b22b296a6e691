// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package minter_test

import (
	"crypto/ecdsa"
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/gateway-custody/chains"
	"github.com/ChainSafe/gateway-custody/events"
	"github.com/ChainSafe/gateway-custody/lvldb"
	"github.com/ChainSafe/gateway-custody/minter"
	"github.com/ChainSafe/gateway-custody/signing"
	"github.com/ChainSafe/gateway-custody/tokens"
	"github.com/ChainSafe/gateway-custody/wire"
)

var (
	minterIdentity = wire.BytesToAddress([]byte{0xaa, 0x02})
	ownerAddr      = wire.BytesToAddress([]byte{0xbb, 0x01})
	pauserAddr     = wire.BytesToAddress([]byte{0xbb, 0x02})
	controllerAddr = wire.BytesToAddress([]byte{0xbb, 0x04})
	supportedToken = wire.BytesToAddress([]byte{0xcc, 0x02})
	recipientAddr  = wire.BytesToAddress([]byte{0xdd, 0x09})
	callerAddr     = wire.BytesToAddress([]byte{0xdd, 0x10})
)

const (
	localDomain = 9
	startHeight = 100
)

type MinterTestSuite struct {
	suite.Suite
	minter   *minter.Minter
	db       *lvldb.LVLDB
	backend  *tokens.InMemoryBackend
	height   *chains.StaticHeight
	recorder *events.Recorder

	attesterKey *ecdsa.PrivateKey
}

func TestRunMinterTestSuite(t *testing.T) {
	suite.Run(t, new(MinterTestSuite))
}

func (s *MinterTestSuite) SetupTest() {
	db, err := lvldb.NewMemLvlDB()
	s.Require().Nil(err)
	s.db = db
	s.backend = tokens.NewInMemoryBackend()
	s.height = chains.NewStaticHeight(startHeight)
	s.recorder = events.NewRecorder()

	s.minter, err = minter.NewMinter(db, s.backend, s.height, s.recorder, minter.Config{
		Domain:          localDomain,
		Identity:        minterIdentity,
		Owner:           ownerAddr,
		Pauser:          pauserAddr,
		TokenController: controllerAddr,
	})
	s.Require().Nil(err)
	s.Require().Nil(s.minter.AddToken(controllerAddr, supportedToken))

	s.attesterKey, err = crypto.GenerateKey()
	s.Require().Nil(err)
	s.Require().Nil(s.minter.AddAttester(ownerAddr, signing.PubkeyToAddress(s.attesterKey.PublicKey)))

	// seed destination custody
	s.backend.Fund(supportedToken, callerAddr, 100_000)
	s.Require().Nil(s.backend.TransferIn(supportedToken, callerAddr, 50_000))
	s.recorder.Reset()
}

func (s *MinterTestSuite) TearDownTest() {
	_ = s.db.Close()
}

func (s *MinterTestSuite) attestationSet(elements ...wire.MintAttestation) wire.MintAttestationSet {
	return wire.MintAttestationSet{
		Version:             wire.MessageVersion,
		DestinationDomain:   localDomain,
		DestinationContract: minterIdentity,
		MaxBlockHeight:      startHeight + 1000,
		Attestations:        elements,
	}
}

func (s *MinterTestSuite) element(value uint64, hashByte byte) wire.MintAttestation {
	return wire.MintAttestation{
		Token:            supportedToken,
		Recipient:        recipientAddr,
		Value:            value,
		TransferSpecHash: wire.Hash{hashByte},
	}
}

func (s *MinterTestSuite) signedSet(set wire.MintAttestationSet) ([]byte, []byte) {
	encoded := set.Encode()
	sig, err := signing.SignPayload(encoded, s.attesterKey)
	s.Require().Nil(err)
	return encoded, sig
}

func (s *MinterTestSuite) Test_GatewayMint_ReleasesCustody() {
	data, sig := s.signedSet(s.attestationSet(s.element(400, 1)))

	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.Nil(err)
	s.Equal(uint64(400), s.backend.Balance(supportedToken, recipientAddr))

	custody, err := s.backend.Custody(supportedToken)
	s.Nil(err)
	s.Equal(uint64(49_600), custody)
	s.Equal([]string{"AttestationUsed"}, s.recorder.Names())
}

func (s *MinterTestSuite) Test_GatewayMint_MultipleElements() {
	data, sig := s.signedSet(s.attestationSet(s.element(400, 1), s.element(600, 2)))

	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.Nil(err)
	s.Equal(uint64(1000), s.backend.Balance(supportedToken, recipientAddr))
	s.Equal([]string{"AttestationUsed", "AttestationUsed"}, s.recorder.Names())
}

func (s *MinterTestSuite) Test_GatewayMint_ElementReplayAbortsWholeSet() {
	data, sig := s.signedSet(s.attestationSet(s.element(400, 1)))
	s.Nil(s.minter.GatewayMint(data, sig, callerAddr))
	s.recorder.Reset()

	// second set reuses hash 1 alongside a fresh element
	data, sig = s.signedSet(s.attestationSet(s.element(100, 2), s.element(100, 1)))
	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, minter.ErrTransferSpecHashAlreadyUsed)

	// nothing from the aborted set settled
	s.Equal(uint64(400), s.backend.Balance(supportedToken, recipientAddr))
	s.Empty(s.recorder.Names())
}

func (s *MinterTestSuite) Test_GatewayMint_DuplicateHashWithinSet() {
	data, sig := s.signedSet(s.attestationSet(s.element(100, 1), s.element(200, 1)))

	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, minter.ErrTransferSpecHashAlreadyUsed)
}

func (s *MinterTestSuite) Test_GatewayMint_UnknownAttester() {
	set := s.attestationSet(s.element(400, 1))
	encoded := set.Encode()
	rogueKey, err := crypto.GenerateKey()
	s.Require().Nil(err)
	sig, err := signing.SignPayload(encoded, rogueKey)
	s.Require().Nil(err)

	err = s.minter.GatewayMint(encoded, sig, callerAddr)
	s.ErrorIs(err, minter.ErrUnknownAttester)
}

func (s *MinterTestSuite) Test_GatewayMint_TamperedPayload() {
	data, sig := s.signedSet(s.attestationSet(s.element(400, 1)))
	data[len(data)-1]++

	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, minter.ErrUnknownAttester)
}

func (s *MinterTestSuite) Test_GatewayMint_Expired() {
	set := s.attestationSet(s.element(400, 1))
	set.MaxBlockHeight = startHeight - 1
	data, sig := s.signedSet(set)

	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, minter.ErrAttestationExpired)
}

func (s *MinterTestSuite) Test_GatewayMint_WrongDomain() {
	set := s.attestationSet(s.element(400, 1))
	set.DestinationDomain = localDomain + 1
	data, sig := s.signedSet(set)

	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, minter.ErrDestinationDomainMismatch)
}

func (s *MinterTestSuite) Test_GatewayMint_WrongContract() {
	set := s.attestationSet(s.element(400, 1))
	set.DestinationContract = wire.BytesToAddress([]byte{0xaa, 0x99})
	data, sig := s.signedSet(set)

	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, minter.ErrDestinationContractMismatch)
}

func (s *MinterTestSuite) Test_GatewayMint_CallerBinding() {
	set := s.attestationSet(s.element(400, 1))
	set.DestinationCaller = callerAddr
	data, sig := s.signedSet(set)

	err := s.minter.GatewayMint(data, sig, wire.BytesToAddress([]byte{0x01}))
	s.ErrorIs(err, minter.ErrDestinationCallerMismatch)

	s.Nil(s.minter.GatewayMint(data, sig, callerAddr))
}

func (s *MinterTestSuite) Test_GatewayMint_ZeroCallerIsWildcard() {
	data, sig := s.signedSet(s.attestationSet(s.element(400, 1)))

	err := s.minter.GatewayMint(data, sig, wire.BytesToAddress([]byte{0x01}))
	s.Nil(err)
}

func (s *MinterTestSuite) Test_GatewayMint_UnsupportedToken() {
	element := s.element(400, 1)
	element.Token = wire.BytesToAddress([]byte{0xff})
	data, sig := s.signedSet(s.attestationSet(element))

	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, minter.ErrTokenNotSupported)
}

func (s *MinterTestSuite) Test_GatewayMint_ZeroValueElement() {
	element := s.element(0, 1)
	data, sig := s.signedSet(s.attestationSet(element))

	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, minter.ErrInvalidAttestationValue)
}

func (s *MinterTestSuite) Test_GatewayMint_WhilePaused() {
	s.Nil(s.minter.Pause(pauserAddr))

	data, sig := s.signedSet(s.attestationSet(s.element(400, 1)))
	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, minter.ErrProgramPaused)
}

func (s *MinterTestSuite) Test_GatewayMint_InsufficientCustody() {
	data, sig := s.signedSet(s.attestationSet(s.element(60_000, 1)))

	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, tokens.ErrInsufficientTokenCustody)
}

func (s *MinterTestSuite) Test_GatewayMint_ElementSumOverflow() {
	// two elements whose values wrap the per-token sum must not slip past
	// the custody pre-check and pay out mid-set
	half := uint64(1) << 63
	data, sig := s.signedSet(s.attestationSet(s.element(half, 1), s.element(half, 2)))

	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, tokens.ErrInsufficientTokenCustody)

	// nothing settled and no hash was consumed
	s.Equal(uint64(0), s.backend.Balance(supportedToken, recipientAddr))
	s.Empty(s.recorder.Names())

	data, sig = s.signedSet(s.attestationSet(s.element(100, 1)))
	s.Nil(s.minter.GatewayMint(data, sig, callerAddr))
}

func (s *MinterTestSuite) Test_GatewayMint_ElementSumOverflowBoundary() {
	set := s.attestationSet(s.element(math.MaxUint64-50, 1), s.element(51, 2))
	data, sig := s.signedSet(set)

	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, tokens.ErrInsufficientTokenCustody)
	s.Equal(uint64(0), s.backend.Balance(supportedToken, recipientAddr))
}

func (s *MinterTestSuite) Test_BurnTokenCustody() {
	s.ErrorIs(s.minter.BurnTokenCustody(ownerAddr, supportedToken, 100), minter.ErrNotTokenController)

	err := s.minter.BurnTokenCustody(controllerAddr, supportedToken, 100)
	s.Nil(err)

	custody, err := s.backend.Custody(supportedToken)
	s.Nil(err)
	s.Equal(uint64(49_900), custody)
	s.Equal([]string{"TokenCustodyBurned"}, s.recorder.Names())
}

func (s *MinterTestSuite) Test_TwoStepOwnershipTransfer() {
	newOwner := wire.BytesToAddress([]byte{0xee})

	s.Nil(s.minter.TransferOwnership(ownerAddr, newOwner))
	s.ErrorIs(s.minter.AcceptOwnership(ownerAddr), minter.ErrNotPendingOwner)
	s.Nil(s.minter.AcceptOwnership(newOwner))

	s.ErrorIs(s.minter.AddAttester(ownerAddr, newOwner), minter.ErrNotOwner)
}

func (s *MinterTestSuite) Test_AttesterList_CapAndRemoval() {
	for i := 1; i < minter.MaxAttesters; i++ {
		s.Nil(s.minter.AddAttester(ownerAddr, wire.BytesToAddress([]byte{0xab, byte(i)})))
	}
	err := s.minter.AddAttester(ownerAddr, wire.BytesToAddress([]byte{0xab, 0xff}))
	s.ErrorIs(err, minter.ErrAttesterLimitExceeded)

	s.Nil(s.minter.RemoveAttester(ownerAddr, wire.BytesToAddress([]byte{0xab, 0x01})))
	s.Nil(s.minter.AddAttester(ownerAddr, wire.BytesToAddress([]byte{0xab, 0xff})))
}

func (s *MinterTestSuite) Test_ReplaySpacesAreIndependentPerLedger() {
	// the same hash consumed on the wallet side must still settle here;
	// the minter only guards its own space
	data, sig := s.signedSet(s.attestationSet(s.element(100, 7)))
	s.Nil(s.minter.GatewayMint(data, sig, callerAddr))

	data, sig = s.signedSet(s.attestationSet(s.element(100, 7)))
	err := s.minter.GatewayMint(data, sig, callerAddr)
	s.ErrorIs(err, minter.ErrTransferSpecHashAlreadyUsed)
}
