// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chunk_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/ethersphere/swarmaddr/pkg/chunk"
	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

func TestAddressMatchesKnownVector(t *testing.T) {
	c, err := chunk.New([]byte{0x01, 0x02, 0x03}, nil)
	if err != nil {
		t.Fatal(err)
	}

	wantSpan := []byte{0x03, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(c.Span(), wantSpan) {
		t.Fatalf("span = %x, want %x", c.Span(), wantSpan)
	}

	addr, err := c.Address()
	if err != nil {
		t.Fatal(err)
	}
	want := swarm.MustParseHexAddress("ca6357a08e317d15ec560fef34e4c45f8f19f01c372aa70f1da72bfa7f1a4338")
	if !addr.Equal(want) {
		t.Fatalf("address = %s, want %s", addr, want)
	}

	tr, err := c.Tree()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tr.Depth(), 7; got != want {
		t.Fatalf("bmt depth = %d, want %d", got, want)
	}
}

func TestRejectsOversizedPayload(t *testing.T) {
	_, err := chunk.New(make([]byte, 4097), nil)
	if !errors.Is(err, chunk.ErrInvalidPayloadLength) {
		t.Fatalf("got %v, want ErrInvalidPayloadLength", err)
	}
}

func TestRejectsNonPowerOfTwoMaxPayload(t *testing.T) {
	_, err := chunk.New([]byte{1}, &chunk.Options{MaxPayloadSize: 96})
	if !errors.Is(err, chunk.ErrInvalidOptions) {
		t.Fatalf("got %v, want ErrInvalidOptions", err)
	}
}

func TestStartingSpanValueOverride(t *testing.T) {
	sum := uint64(9000)
	c, err := chunk.New(make([]byte, 64), &chunk.Options{StartingSpanValue: &sum})
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.SpanValue()
	if err != nil {
		t.Fatal(err)
	}
	if got != sum {
		t.Fatalf("span value = %d, want %d", got, sum)
	}
}

// TestCustomHashFuncSharesDefaultCapacity builds two chunks with the same
// MaxPayloadSize (the default 4096, also used by the package's other
// default-hash tests) but different injected hash functions, proving the
// pooled BMT hasher underneath never leaks one chunk's hash function into
// the other's address.
func TestCustomHashFuncSharesDefaultCapacity(t *testing.T) {
	sha3256 := func(data ...[]byte) ([]byte, error) {
		h := sha3.New256()
		for _, d := range data {
			if _, err := h.Write(d); err != nil {
				return nil, err
			}
		}
		return h.Sum(nil), nil
	}

	payload := []byte("hello world")

	defaultChunk, err := chunk.New(payload, nil)
	if err != nil {
		t.Fatal(err)
	}
	defaultAddr, err := defaultChunk.Address()
	if err != nil {
		t.Fatal(err)
	}

	customChunk, err := chunk.New(payload, &chunk.Options{HashFunc: sha3256})
	if err != nil {
		t.Fatal(err)
	}
	customAddr, err := customChunk.Address()
	if err != nil {
		t.Fatal(err)
	}

	if defaultAddr.Equal(customAddr) {
		t.Fatalf("chunks with different hash functions produced the same address %s", defaultAddr)
	}

	// Building another default-hash chunk afterwards must still use Keccak,
	// not whatever hash function last populated the shared capacity pool.
	anotherDefault, err := chunk.New(payload, nil)
	if err != nil {
		t.Fatal(err)
	}
	anotherAddr, err := anotherDefault.Address()
	if err != nil {
		t.Fatal(err)
	}
	if !anotherAddr.Equal(defaultAddr) {
		t.Fatalf("address = %s, want %s (pool leaked a non-default hash function)", anotherAddr, defaultAddr)
	}
}

func TestInclusionProofWithinChunk(t *testing.T) {
	c, err := chunk.New([]byte("hello world"), nil)
	if err != nil {
		t.Fatal(err)
	}
	proof, err := c.InclusionProof(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(proof.SisterSegments) != 7 {
		t.Fatalf("got %d sister segments, want 7", len(proof.SisterSegments))
	}

	// The same "hello world" BMT vector as pkg/bmt's TestInclusionProofRoundTrip,
	// given in the Swarm reference as hex truncated to an 8-char prefix and
	// 4-char suffix, verified here through the chunk-level API rather than
	// a tautological round trip against the chunk's own reconstructed root.
	wantSisterHex := []struct{ prefix, suffix string }{
		{"00000000", "0000"},
		{"ad3228b6", "5fb5"},
		{"b4c11951", "0d30"},
		{"21ddb9a3", "ba85"},
		{"e58769b3", "9344"},
		{"0eb01ebf", "cf2d"},
		{"887c22bd", "1968"},
	}
	for i, want := range wantSisterHex {
		got := hex.EncodeToString(proof.SisterSegments[i])
		if got[:len(want.prefix)] != want.prefix || got[len(got)-len(want.suffix):] != want.suffix {
			t.Fatalf("sister segment %d = %s, want %s…%s", i, got, want.prefix, want.suffix)
		}
	}
}
