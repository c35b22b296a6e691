// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package events defines the typed events both ledgers emit and the sinks
// that consume them.
package events

import "github.com/ChainSafe/gateway-custody/wire"

// Event is any ledger occurrence worth surfacing to operators.
type Event interface {
	Name() string
}

// Sink consumes events as operations emit them.
type Sink interface {
	Emit(event Event)
}

type WalletInitialized struct {
	Domain uint32 `json:"domain"`
}

func (WalletInitialized) Name() string { return "WalletInitialized" }

type MinterInitialized struct {
	Domain uint32 `json:"domain"`
}

func (MinterInitialized) Name() string { return "MinterInitialized" }

type OwnershipTransferStarted struct {
	PreviousOwner wire.Address `json:"previousOwner"`
	NewOwner      wire.Address `json:"newOwner"`
}

func (OwnershipTransferStarted) Name() string { return "OwnershipTransferStarted" }

type OwnershipTransferred struct {
	PreviousOwner wire.Address `json:"previousOwner"`
	NewOwner      wire.Address `json:"newOwner"`
}

func (OwnershipTransferred) Name() string { return "OwnershipTransferred" }

type PauserChanged struct {
	OldPauser wire.Address `json:"oldPauser"`
	NewPauser wire.Address `json:"newPauser"`
}

func (PauserChanged) Name() string { return "PauserChanged" }

type DenylisterChanged struct {
	OldDenylister wire.Address `json:"oldDenylister"`
	NewDenylister wire.Address `json:"newDenylister"`
}

func (DenylisterChanged) Name() string { return "DenylisterChanged" }

type TokenControllerUpdated struct {
	PreviousTokenController wire.Address `json:"previousTokenController"`
	NewTokenController      wire.Address `json:"newTokenController"`
}

func (TokenControllerUpdated) Name() string { return "TokenControllerUpdated" }

type FeeRecipientChanged struct {
	OldFeeRecipient wire.Address `json:"oldFeeRecipient"`
	NewFeeRecipient wire.Address `json:"newFeeRecipient"`
}

func (FeeRecipientChanged) Name() string { return "FeeRecipientChanged" }

type WithdrawalDelayChanged struct {
	OldDelay uint64 `json:"oldDelay"`
	NewDelay uint64 `json:"newDelay"`
}

func (WithdrawalDelayChanged) Name() string { return "WithdrawalDelayChanged" }

type TokenSupported struct {
	Token wire.Address `json:"token"`
}

func (TokenSupported) Name() string { return "TokenSupported" }

type BurnSignerAdded struct {
	Signer wire.Address `json:"signer"`
}

func (BurnSignerAdded) Name() string { return "BurnSignerAdded" }

type BurnSignerRemoved struct {
	Signer wire.Address `json:"signer"`
}

func (BurnSignerRemoved) Name() string { return "BurnSignerRemoved" }

type AttestationSignerAdded struct {
	Signer wire.Address `json:"signer"`
}

func (AttestationSignerAdded) Name() string { return "AttestationSignerAdded" }

type AttestationSignerRemoved struct {
	Signer wire.Address `json:"signer"`
}

func (AttestationSignerRemoved) Name() string { return "AttestationSignerRemoved" }

type Paused struct {
	Account wire.Address `json:"account"`
}

func (Paused) Name() string { return "Paused" }

type Unpaused struct {
	Account wire.Address `json:"account"`
}

func (Unpaused) Name() string { return "Unpaused" }

type Deposited struct {
	Token     wire.Address `json:"token"`
	Depositor wire.Address `json:"depositor"`
	Sender    wire.Address `json:"sender"`
	Value     uint64       `json:"value"`
}

func (Deposited) Name() string { return "Deposited" }

type DelegateAdded struct {
	Token     wire.Address `json:"token"`
	Depositor wire.Address `json:"depositor"`
	Delegate  wire.Address `json:"delegate"`
}

func (DelegateAdded) Name() string { return "DelegateAdded" }

type DelegateRemoved struct {
	Token     wire.Address `json:"token"`
	Depositor wire.Address `json:"depositor"`
	Delegate  wire.Address `json:"delegate"`
}

func (DelegateRemoved) Name() string { return "DelegateRemoved" }

type Denylisted struct {
	Address wire.Address `json:"address"`
}

func (Denylisted) Name() string { return "Denylisted" }

type UnDenylisted struct {
	Address wire.Address `json:"address"`
}

func (UnDenylisted) Name() string { return "UnDenylisted" }

type WithdrawalInitiated struct {
	Token              wire.Address `json:"token"`
	Depositor          wire.Address `json:"depositor"`
	Value              uint64       `json:"value"`
	RemainingAvailable uint64       `json:"remainingAvailable"`
	TotalWithdrawing   uint64       `json:"totalWithdrawing"`
	WithdrawalBlock    uint64       `json:"withdrawalBlock"`
}

func (WithdrawalInitiated) Name() string { return "WithdrawalInitiated" }

type WithdrawalCompleted struct {
	Token     wire.Address `json:"token"`
	Depositor wire.Address `json:"depositor"`
	Value     uint64       `json:"value"`
}

func (WithdrawalCompleted) Name() string { return "WithdrawalCompleted" }

type GatewayBurned struct {
	Token                wire.Address `json:"token"`
	Depositor            wire.Address `json:"depositor"`
	TransferSpecHash     wire.Hash    `json:"transferSpecHash"`
	DestinationDomain    uint32       `json:"destinationDomain"`
	DestinationRecipient wire.Address `json:"destinationRecipient"`
	Signer               wire.Address `json:"signer"`
	Value                uint64       `json:"value"`
	Fee                  uint64       `json:"fee"`
	FromAvailable        uint64       `json:"fromAvailable"`
	FromWithdrawing      uint64       `json:"fromWithdrawing"`
}

func (GatewayBurned) Name() string { return "GatewayBurned" }

type InsufficientBalance struct {
	Token              wire.Address `json:"token"`
	Depositor          wire.Address `json:"depositor"`
	Value              uint64       `json:"value"`
	AvailableBalance   uint64       `json:"availableBalance"`
	WithdrawingBalance uint64       `json:"withdrawingBalance"`
}

func (InsufficientBalance) Name() string { return "InsufficientBalance" }

type AttestationUsed struct {
	Token            wire.Address `json:"token"`
	Recipient        wire.Address `json:"recipient"`
	TransferSpecHash wire.Hash    `json:"transferSpecHash"`
	Value            uint64       `json:"value"`
}

func (AttestationUsed) Name() string { return "AttestationUsed" }

type TokenCustodyBurned struct {
	Token  wire.Address `json:"token"`
	Amount uint64       `json:"amount"`
}

func (TokenCustodyBurned) Name() string { return "TokenCustodyBurned" }
