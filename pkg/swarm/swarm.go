// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swarm contains the basic addressing and hashing primitives shared
// by the chunk, bmt and file packages.
package swarm

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

const (
	// SectionSize is the size of a single BMT segment in bytes.
	SectionSize = 32
	// SpanSize is the default width of the span length-prefix in bytes.
	SpanSize = 8
	// DefaultMaxPayloadSize is the default chunk payload capacity in bytes.
	DefaultMaxPayloadSize = 4096
	// DefaultBranches is the default BMT/trie branching factor
	// (DefaultMaxPayloadSize / SectionSize).
	DefaultBranches = DefaultMaxPayloadSize / SectionSize
	// MaxSafeSpanValue is the largest span value that can be represented
	// without loss in a float64-based or 53-bit-safe integer host, matching
	// the Swarm reference implementation's own safe-integer cap.
	MaxSafeSpanValue = 1<<53 - 1
)

// ErrInvalidChunk is returned when chunk data does not round-trip through
// its own content address.
var ErrInvalidChunk = errors.New("invalid chunk")

// HashFunc is the hashing capability injected throughout this module. It
// accepts a variadic list of byte slices, concatenates them conceptually and
// returns their 32-byte digest. The default is Keccak-256.
type HashFunc func(data ...[]byte) ([]byte, error)

// NewKeccakHasher returns the default HashFunc: Keccak-256 (Ethereum/Swarm
// compatible, not NIST SHA3).
func NewKeccakHasher() HashFunc {
	return func(data ...[]byte) ([]byte, error) {
		h := sha3.NewLegacyKeccak256()
		for _, d := range data {
			if _, err := h.Write(d); err != nil {
				return nil, err
			}
		}
		return h.Sum(nil), nil
	}
}

// Address represents a content address in Swarm's 32-byte address space.
type Address struct {
	b []byte
}

// NewAddress constructs an Address from a byte slice.
func NewAddress(b []byte) Address {
	return Address{b: b}
}

// ParseHexAddress returns an Address from a hex-encoded string.
func ParseHexAddress(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, err
	}
	return NewAddress(b), nil
}

// MustParseHexAddress is like ParseHexAddress but panics on error; intended
// for use with compile-time-known test vectors only.
func MustParseHexAddress(s string) Address {
	a, err := ParseHexAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Bytes returns the raw bytes of the address.
func (a Address) Bytes() []byte {
	return a.b
}

// String returns the hex-encoded representation of the address.
func (a Address) String() string {
	return hex.EncodeToString(a.b)
}

// Equal reports whether two addresses carry identical bytes.
func (a Address) Equal(b Address) bool {
	return bytes.Equal(a.b, b.b)
}

// IsZero reports whether the address has never been set.
func (a Address) IsZero() bool {
	return len(a.b) == 0
}

// ZeroAddress is the unset address.
var ZeroAddress = NewAddress(nil)

// ValidateSegmentIndex returns ErrSegmentIndexOutOfRange-wrapping error if
// segmentIndex*SectionSize does not lie within [0, coveredBytes).
func ValidateSegmentIndex(segmentIndex int, coveredBytes int) error {
	if segmentIndex < 0 || segmentIndex*SectionSize >= coveredBytes {
		return fmt.Errorf("segment index %d out of range for %d covered bytes: %w", segmentIndex, coveredBytes, ErrSegmentIndexOutOfRange)
	}
	return nil
}

// ErrSegmentIndexOutOfRange is returned when a caller requests a proof or
// chunk position for a segment beyond the covered payload.
var ErrSegmentIndexOutOfRange = errors.New("segment index out of range")
