// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wire

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Address is a chain-agnostic 32-byte account identifier. EVM-style 20-byte
// addresses are carried right-aligned with the high 12 bytes zeroed.
type Address [32]byte

// Hash is a 32-byte keccak256 digest.
type Hash [32]byte

// ZeroAddress is the "anyone"/unset sentinel.
var ZeroAddress = Address{}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) String() string {
	return a.Hex()
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) String() string {
	return h.Hex()
}

// MarshalJSON encodes the address as a 0x-prefixed hex string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Hex())
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := HexToAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON encodes the hash as a 0x-prefixed hex string.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Hex())
}

func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return err
	}
	if len(b) != 32 {
		return fmt.Errorf("hash %q must be 32 bytes", s)
	}
	copy(h[:], b)
	return nil
}

// HexToAddress parses a hex string into an Address. Inputs shorter than
// 32 bytes are right-aligned, matching how EVM addresses are embedded.
func HexToAddress(s string) (Address, error) {
	var a Address
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("invalid address %q: %w", s, err)
	}
	if len(b) > 32 {
		return a, fmt.Errorf("address %q longer than 32 bytes", s)
	}
	copy(a[32-len(b):], b)
	return a, nil
}

// BytesToAddress right-aligns b into an Address.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(a[32-len(b):], b)
	return a
}
