// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wire

import "bytes"

// AttestationSetMagic is bytes4(keccak256("circle.gateway.MintAttestationSet")).
const AttestationSetMagic uint32 = 0x10cbb1ec

// MintAttestationSet header offsets.
const (
	asMagicOffset               = 0
	asVersionOffset             = 4
	asDestinationDomainOffset   = 8
	asDestinationContractOffset = 12
	asDestinationCallerOffset   = 44
	asMaxBlockHeightOffset      = 76
	asNumAttestationsOffset     = 84
	asElementsOffset            = 88
)

// AttestationSetHeaderLength is the encoded size of the set header preceding
// the elements.
const AttestationSetHeaderLength = asElementsOffset

// MintAttestation element offsets, relative to the element start.
const (
	maTokenOffset            = 0
	maRecipientOffset        = 32
	maValueOffset            = 64
	maTransferSpecHashOffset = 72
	maHookDataLengthOffset   = 104
	maHookDataOffset         = 108
)

// MintAttestationBaseLength is the encoded size of one attestation with
// empty hook data.
const MintAttestationBaseLength = maHookDataOffset

// MintAttestation authorizes a single mint on the destination ledger. The
// TransferSpecHash ties it back to the originating burn and is the replay
// protection key on the minter side.
type MintAttestation struct {
	Token            Address
	Recipient        Address
	Value            uint64
	TransferSpecHash Hash
	HookData         []byte
}

// MintAttestationSet is an attester-signed batch of mint authorizations bound
// to one destination domain, contract and optional caller.
type MintAttestationSet struct {
	Version             uint32
	DestinationDomain   uint32
	DestinationContract Address
	DestinationCaller   Address
	MaxBlockHeight      uint64
	Attestations        []MintAttestation
}

// Encode serializes the set into its fixed-offset wire representation.
func (as *MintAttestationSet) Encode() []byte {
	buf := bytes.Buffer{}

	writeUint32(&buf, AttestationSetMagic)
	writeUint32(&buf, as.Version)
	writeUint32(&buf, as.DestinationDomain)
	buf.Write(as.DestinationContract[:])
	buf.Write(as.DestinationCaller[:])
	writeUint64(&buf, as.MaxBlockHeight)
	writeUint32(&buf, uint32(len(as.Attestations)))
	for i := range as.Attestations {
		a := &as.Attestations[i]
		buf.Write(a.Token[:])
		buf.Write(a.Recipient[:])
		writeUint64(&buf, a.Value)
		buf.Write(a.TransferSpecHash[:])
		writeUint32(&buf, uint32(len(a.HookData)))
		buf.Write(a.HookData)
	}
	return buf.Bytes()
}

// DecodeMintAttestationSet parses and validates an encoded set. Every element
// is walked with strict bounds so a declared count or hook length can neither
// run past the payload nor leave trailing bytes, and an empty set is
// rejected.
func DecodeMintAttestationSet(data []byte) (*MintAttestationSet, error) {
	if len(data) < AttestationSetHeaderLength {
		return nil, ErrMalformedMintAttestation
	}
	if readUint32(data, asMagicOffset) != AttestationSetMagic {
		return nil, ErrAttestationMagicMismatch
	}

	num := int(readUint32(data, asNumAttestationsOffset))
	if num == 0 {
		return nil, ErrEmptyAttestationSet
	}

	as := &MintAttestationSet{
		Version:             readUint32(data, asVersionOffset),
		DestinationDomain:   readUint32(data, asDestinationDomainOffset),
		DestinationContract: readAddress(data, asDestinationContractOffset),
		DestinationCaller:   readAddress(data, asDestinationCallerOffset),
		MaxBlockHeight:      readUint64(data, asMaxBlockHeightOffset),
		Attestations:        make([]MintAttestation, 0, num),
	}

	offset := asElementsOffset
	for i := 0; i < num; i++ {
		if len(data) < offset+MintAttestationBaseLength {
			return nil, ErrAttestationTooShort
		}
		hookDataLength := int(readUint32(data, offset+maHookDataLengthOffset))
		if len(data) < offset+MintAttestationBaseLength+hookDataLength {
			return nil, ErrAttestationTooShort
		}

		a := MintAttestation{
			Token:            readAddress(data, offset+maTokenOffset),
			Recipient:        readAddress(data, offset+maRecipientOffset),
			Value:            readUint64(data, offset+maValueOffset),
			TransferSpecHash: readHash(data, offset+maTransferSpecHashOffset),
		}
		if hookDataLength > 0 {
			a.HookData = make([]byte, hookDataLength)
			copy(a.HookData, data[offset+maHookDataOffset:])
		}
		as.Attestations = append(as.Attestations, a)
		offset += MintAttestationBaseLength + hookDataLength
	}
	if offset != len(data) {
		return nil, ErrAttestationTooLong
	}
	return as, nil
}
