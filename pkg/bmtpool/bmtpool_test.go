// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmtpool_test

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/ethersphere/swarmaddr/pkg/bmtpool"
	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

// sha3256Hasher is a HashFunc distinct from swarm.NewKeccakHasher's, used to
// prove that a capacity-keyed pool correctly rebinds the hash function on
// every Get rather than silently reusing whichever one first populated the
// pool for that MaxPayloadSize.
func sha3256Hasher() swarm.HashFunc {
	return func(data ...[]byte) ([]byte, error) {
		h := sha3.New256()
		for _, d := range data {
			if _, err := h.Write(d); err != nil {
				return nil, err
			}
		}
		return h.Sum(nil), nil
	}
}

func TestGetRebindsHashFuncAtSharedCapacity(t *testing.T) {
	const maxPayload = 64
	payload := []byte("hello world")

	keccak := swarm.NewKeccakHasher()
	sha3256 := sha3256Hasher()

	// Interleave requests for the same MaxPayloadSize but different hash
	// functions, so a pool keyed (or factory-bound) only by capacity would
	// hand back a Hasher still wired to whichever hash function first
	// created the pool.
	h1 := bmtpool.Get(maxPayload, keccak)
	if _, err := h1.Write(payload); err != nil {
		t.Fatal(err)
	}
	tree1, err := h1.Tree()
	if err != nil {
		t.Fatal(err)
	}
	root1 := append([]byte(nil), tree1.Root()...)
	bmtpool.Put(maxPayload, h1)

	h2 := bmtpool.Get(maxPayload, sha3256)
	if _, err := h2.Write(payload); err != nil {
		t.Fatal(err)
	}
	tree2, err := h2.Tree()
	if err != nil {
		t.Fatal(err)
	}
	root2 := append([]byte(nil), tree2.Root()...)
	bmtpool.Put(maxPayload, h2)

	if bytes.Equal(root1, root2) {
		t.Fatalf("roots from distinct hash functions collided: %x", root1)
	}

	// A third retrieval, again at the same capacity, must still honour
	// whichever hash function is requested this time, even though the pool
	// may now be handing back one of the two Hashers used above.
	h3 := bmtpool.Get(maxPayload, keccak)
	if _, err := h3.Write(payload); err != nil {
		t.Fatal(err)
	}
	tree3, err := h3.Tree()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(tree3.Root(), root1) {
		t.Fatalf("got root %x for keccak, want %x", tree3.Root(), root1)
	}
	bmtpool.Put(maxPayload, h3)
}
