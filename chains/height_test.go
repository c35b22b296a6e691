// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chains_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/gateway-custody/chains"
)

type SlotClockTestSuite struct {
	suite.Suite
}

func TestRunSlotClockTestSuite(t *testing.T) {
	suite.Run(t, new(SlotClockTestSuite))
}

func (s *SlotClockTestSuite) Test_NonPositiveSlotDuration() {
	_, err := chains.NewSlotClock(time.Now(), 0)
	s.NotNil(err)
}

func (s *SlotClockTestSuite) Test_HeightDerivedFromGenesis() {
	clock, err := chains.NewSlotClock(time.Now().Add(-10*time.Second), time.Second)
	s.Nil(err)

	height, err := clock.CurrentHeight()
	s.Nil(err)
	s.GreaterOrEqual(height, uint64(10))
	s.Less(height, uint64(12))
}

func (s *SlotClockTestSuite) Test_GenesisInFuture() {
	clock, err := chains.NewSlotClock(time.Now().Add(time.Hour), time.Second)
	s.Nil(err)

	height, err := clock.CurrentHeight()
	s.Nil(err)
	s.Equal(uint64(0), height)
}

func (s *SlotClockTestSuite) Test_StaticHeight() {
	static := chains.NewStaticHeight(100)

	height, err := static.CurrentHeight()
	s.Nil(err)
	s.Equal(uint64(100), height)

	static.Set(250)
	height, err = static.CurrentHeight()
	s.Nil(err)
	s.Equal(uint64(250), height)
}
