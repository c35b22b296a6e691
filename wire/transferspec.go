// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package wire implements the fixed-offset binary encodings exchanged between
// gateway ledgers, signers and attesters. All integers are big-endian.
//
// TransferSpec layout:
//
//	offset  size  field
//	0       4     magic (0xca85def7)
//	4       4     version
//	8       4     source_domain
//	12      4     destination_domain
//	16      32    source_contract
//	48      32    destination_contract
//	80      32    source_token
//	112     32    destination_token
//	144     32    source_depositor
//	176     32    destination_recipient
//	208     32    source_signer
//	240     32    destination_caller
//	272     32    value (u256, only last 8 bytes may be non-zero)
//	304     32    salt
//	336     4     hook_data_length
//	340     N     hook_data
package wire

import (
	"bytes"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"
)

// TransferSpecMagic is bytes4(keccak256("circle.gateway.TransferSpec")).
const TransferSpecMagic uint32 = 0xca85def7

// MessageVersion is the protocol version both ledgers currently speak.
const MessageVersion uint32 = 1

// TransferSpec field offsets.
const (
	tsMagicOffset                = 0
	tsVersionOffset              = 4
	tsSourceDomainOffset         = 8
	tsDestinationDomainOffset    = 12
	tsSourceContractOffset       = 16
	tsDestinationContractOffset  = 48
	tsSourceTokenOffset          = 80
	tsDestinationTokenOffset     = 112
	tsSourceDepositorOffset      = 144
	tsDestinationRecipientOffset = 176
	tsSourceSignerOffset         = 208
	tsDestinationCallerOffset    = 240
	tsValueOffset                = 272
	tsSaltOffset                 = 304
	tsHookDataLengthOffset       = 336
	tsHookDataOffset             = 340
)

// TransferSpecBaseLength is the encoded size of a TransferSpec with empty
// hook data.
const TransferSpecBaseLength = tsHookDataOffset

// Token amounts and block heights are encoded as 32 bytes on the wire while
// the ledger operates on u64. The high 24 bytes must be zero.
const u256ToU64Offset = 24

// TransferSpec is the canonical description of a single cross-chain value
// movement. Its keccak256 hash over the encoded bytes uniquely identifies the
// transfer and doubles as the replay protection key on both ledgers.
type TransferSpec struct {
	Version              uint32
	SourceDomain         uint32
	DestinationDomain    uint32
	SourceContract       Address
	DestinationContract  Address
	SourceToken          Address
	DestinationToken     Address
	SourceDepositor      Address
	DestinationRecipient Address
	SourceSigner         Address
	DestinationCaller    Address
	Value                uint64
	Salt                 Hash
	HookData             []byte
}

// Encode serializes the spec into its fixed-offset wire representation.
func (ts *TransferSpec) Encode() []byte {
	buf := bytes.Buffer{}
	buf.Grow(TransferSpecBaseLength + len(ts.HookData))

	writeUint32(&buf, TransferSpecMagic)
	writeUint32(&buf, ts.Version)
	writeUint32(&buf, ts.SourceDomain)
	writeUint32(&buf, ts.DestinationDomain)
	buf.Write(ts.SourceContract[:])
	buf.Write(ts.DestinationContract[:])
	buf.Write(ts.SourceToken[:])
	buf.Write(ts.DestinationToken[:])
	buf.Write(ts.SourceDepositor[:])
	buf.Write(ts.DestinationRecipient[:])
	buf.Write(ts.SourceSigner[:])
	buf.Write(ts.DestinationCaller[:])
	writeUint64AsU256(&buf, ts.Value)
	buf.Write(ts.Salt[:])
	writeUint32(&buf, uint32(len(ts.HookData)))
	buf.Write(ts.HookData)

	return buf.Bytes()
}

// Hash returns keccak256 of the encoded spec.
func (ts *TransferSpec) Hash() Hash {
	var h Hash
	copy(h[:], crypto.Keccak256(ts.Encode()))
	return h
}

// DecodeTransferSpec parses and validates an encoded TransferSpec. Truncated
// and padded payloads are both rejected, as are a wrong magic, non-zero high
// bytes in the value field and a zero value.
func DecodeTransferSpec(data []byte) (*TransferSpec, error) {
	if len(data) < TransferSpecBaseLength {
		return nil, ErrTransferSpecLengthMismatch
	}
	if readUint32(data, tsMagicOffset) != TransferSpecMagic {
		return nil, ErrTransferSpecMagicMismatch
	}

	hookDataLength := int(readUint32(data, tsHookDataLengthOffset))
	if len(data) != TransferSpecBaseLength+hookDataLength {
		return nil, ErrTransferSpecLengthMismatch
	}

	value, err := readUint64FromU256(data, tsValueOffset)
	if err != nil {
		return nil, err
	}
	if value == 0 {
		return nil, ErrInvalidTransferSpecValue
	}

	ts := &TransferSpec{
		Version:              readUint32(data, tsVersionOffset),
		SourceDomain:         readUint32(data, tsSourceDomainOffset),
		DestinationDomain:    readUint32(data, tsDestinationDomainOffset),
		SourceContract:       readAddress(data, tsSourceContractOffset),
		DestinationContract:  readAddress(data, tsDestinationContractOffset),
		SourceToken:          readAddress(data, tsSourceTokenOffset),
		DestinationToken:     readAddress(data, tsDestinationTokenOffset),
		SourceDepositor:      readAddress(data, tsSourceDepositorOffset),
		DestinationRecipient: readAddress(data, tsDestinationRecipientOffset),
		SourceSigner:         readAddress(data, tsSourceSignerOffset),
		DestinationCaller:    readAddress(data, tsDestinationCallerOffset),
		Value:                value,
		Salt:                 readHash(data, tsSaltOffset),
	}
	if hookDataLength > 0 {
		ts.HookData = make([]byte, hookDataLength)
		copy(ts.HookData, data[tsHookDataOffset:])
	}
	return ts, nil
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeUint64AsU256(buf *bytes.Buffer, v uint64) {
	var b [32]byte
	binary.BigEndian.PutUint64(b[u256ToU64Offset:], v)
	buf.Write(b[:])
}

func readUint32(data []byte, offset int) uint32 {
	return binary.BigEndian.Uint32(data[offset : offset+4])
}

func readUint64(data []byte, offset int) uint64 {
	return binary.BigEndian.Uint64(data[offset : offset+8])
}

// readUint64FromU256 reads a u64 encoded as the low 8 bytes of a 32-byte
// big-endian word. A non-zero high word indicates a malicious payload or an
// overflow attempt and hard-fails instead of truncating.
func readUint64FromU256(data []byte, offset int) (uint64, error) {
	for _, b := range data[offset : offset+u256ToU64Offset] {
		if b != 0 {
			return 0, ErrInvalidU64HighBytes
		}
	}
	return binary.BigEndian.Uint64(data[offset+u256ToU64Offset : offset+32]), nil
}

func readAddress(data []byte, offset int) Address {
	var a Address
	copy(a[:], data[offset:offset+32])
	return a
}

func readHash(data []byte, offset int) Hash {
	var h Hash
	copy(h[:], data[offset:offset+32])
	return h
}
