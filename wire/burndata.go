// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wire

import "bytes"

// BurnData field offsets. The payload is what a burn signer countersigns and
// relays to the wallet ledger: the operator fee, the user's ed25519 signature
// and the signed message itself (domain separation prefix plus BurnIntent).
const (
	bdFeeOffset           = 0
	bdUserSignatureOffset = 8
	bdMessagePrefixOffset = 72
	bdIntentOffset        = 88
)

// BurnDataBaseLength is the encoded size of BurnData without the BurnIntent.
const BurnDataBaseLength = bdIntentOffset

// UserSignatureLength is the size of the raw ed25519 signature carried in
// BurnData.
const UserSignatureLength = 64

// MessagePrefixLength is the size of the domain separation prefix the user
// signs ahead of the BurnIntent bytes.
const MessagePrefixLength = 16

// BurnIntentMessagePrefix separates burn intent signatures from any other
// message a wallet key might sign. The user signs prefix || intent.
var BurnIntentMessagePrefix = [MessagePrefixLength]byte{0xff}

// BurnData is the relay payload for a single burn. The embedded intent is
// kept in both decoded and raw form so signature verification runs over the
// exact bytes the user signed.
type BurnData struct {
	Fee           uint64
	UserSignature [UserSignatureLength]byte
	Intent        BurnIntent

	rawIntent []byte
}

// Encode serializes the burn data with the canonical message prefix.
func (bd *BurnData) Encode() []byte {
	intent := bd.Intent.Encode()

	buf := bytes.Buffer{}
	buf.Grow(BurnDataBaseLength + len(intent))
	writeUint64(&buf, bd.Fee)
	buf.Write(bd.UserSignature[:])
	buf.Write(BurnIntentMessagePrefix[:])
	buf.Write(intent)
	return buf.Bytes()
}

// SignedMessage returns the exact bytes the user's ed25519 key signed, the
// domain separation prefix followed by the encoded intent.
func (bd *BurnData) SignedMessage() []byte {
	rawIntent := bd.rawIntent
	if rawIntent == nil {
		rawIntent = bd.Intent.Encode()
	}
	msg := make([]byte, 0, MessagePrefixLength+len(rawIntent))
	msg = append(msg, BurnIntentMessagePrefix[:]...)
	return append(msg, rawIntent...)
}

// DecodeBurnData parses and validates a relay payload. The message prefix
// must match byte for byte and the embedded intent must decode cleanly.
func DecodeBurnData(data []byte) (*BurnData, error) {
	if len(data) < BurnDataBaseLength {
		return nil, ErrMalformedBurnData
	}
	if !bytes.Equal(data[bdMessagePrefixOffset:bdIntentOffset], BurnIntentMessagePrefix[:]) {
		return nil, ErrInvalidBurnIntentMessagePrefix
	}

	rawIntent := data[bdIntentOffset:]
	intent, err := DecodeBurnIntent(rawIntent)
	if err != nil {
		return nil, err
	}

	bd := &BurnData{
		Fee:       readUint64(data, bdFeeOffset),
		Intent:    *intent,
		rawIntent: make([]byte, len(rawIntent)),
	}
	copy(bd.UserSignature[:], data[bdUserSignatureOffset:bdMessagePrefixOffset])
	copy(bd.rawIntent, rawIntent)
	return bd, nil
}
