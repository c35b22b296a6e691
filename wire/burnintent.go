// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wire

import "bytes"

// BurnIntentMagic is bytes4(keccak256("circle.gateway.BurnIntent")).
const BurnIntentMagic uint32 = 0x070afbc2

// BurnIntentSetMagic identifies batched intents. Sets are only meaningful on
// EVM gateways and are rejected here so a set can never be replayed as a
// single intent.
const BurnIntentSetMagic uint32 = 0xe999239b

// BurnIntent field offsets.
const (
	biMagicOffset          = 0
	biMaxBlockHeightOffset = 4
	biMaxFeeOffset         = 36
	biSpecLengthOffset     = 68
	biSpecOffset           = 72
)

// BurnIntentBaseLength is the encoded size of a BurnIntent without the
// embedded TransferSpec.
const BurnIntentBaseLength = biSpecOffset

// BurnIntent is the user-signed authorization to burn custodied funds. The
// embedded TransferSpec carries the routing details; MaxBlockHeight bounds
// how long the intent stays redeemable and MaxFee caps what the operator may
// charge on top of the transferred value.
type BurnIntent struct {
	MaxBlockHeight uint64
	MaxFee         uint64
	Spec           TransferSpec
}

// Encode serializes the intent, embedding the encoded TransferSpec.
func (bi *BurnIntent) Encode() []byte {
	spec := bi.Spec.Encode()

	buf := bytes.Buffer{}
	buf.Grow(BurnIntentBaseLength + len(spec))
	writeUint32(&buf, BurnIntentMagic)
	writeUint64AsU256(&buf, bi.MaxBlockHeight)
	writeUint64AsU256(&buf, bi.MaxFee)
	writeUint32(&buf, uint32(len(spec)))
	buf.Write(spec)
	return buf.Bytes()
}

// DecodeBurnIntent parses and validates an encoded BurnIntent, including the
// embedded TransferSpec. The declared spec length must match both the
// remaining payload and the spec's own hook data length.
func DecodeBurnIntent(data []byte) (*BurnIntent, error) {
	if len(data) < BurnIntentBaseLength {
		return nil, ErrBurnIntentLengthMismatch
	}
	switch readUint32(data, biMagicOffset) {
	case BurnIntentMagic:
	case BurnIntentSetMagic:
		return nil, ErrBurnIntentSetNotSupported
	default:
		return nil, ErrBurnIntentMagicMismatch
	}

	maxBlockHeight, err := readUint64FromU256(data, biMaxBlockHeightOffset)
	if err != nil {
		return nil, err
	}
	maxFee, err := readUint64FromU256(data, biMaxFeeOffset)
	if err != nil {
		return nil, err
	}

	specLength := int(readUint32(data, biSpecLengthOffset))
	if len(data) != BurnIntentBaseLength+specLength {
		return nil, ErrBurnIntentLengthMismatch
	}
	spec, err := DecodeTransferSpec(data[biSpecOffset:])
	if err != nil {
		return nil, err
	}

	return &BurnIntent{
		MaxBlockHeight: maxBlockHeight,
		MaxFee:         maxFee,
		Spec:           *spec,
	}, nil
}
