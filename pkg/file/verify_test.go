// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file_test

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/ethersphere/swarmaddr/pkg/file"
	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

func TestVerifyBatchAllValid(t *testing.T) {
	payload := make([]byte, 64*5+20)
	for i := range payload {
		payload[i] = byte(i)
	}
	f, err := file.New(payload, smallBranchOpts())
	if err != nil {
		t.Fatal(err)
	}
	addr, err := f.Address()
	if err != nil {
		t.Fatal(err)
	}
	hashFunc := swarm.NewKeccakHasher()

	n := totalSegments(len(payload))
	proofs := make([]file.InclusionProof, n)
	segments := make([][]byte, n)
	indices := make([]int, n)
	for i := 0; i < n; i++ {
		proof, err := f.InclusionProof(i)
		if err != nil {
			t.Fatal(err)
		}
		proofs[i] = proof
		segments[i] = segmentAt(payload, i)
		indices[i] = i
	}

	if err := file.VerifyBatch(addr, proofs, segments, indices, hashFunc); err != nil {
		t.Fatalf("VerifyBatch: unexpected error: %v", err)
	}
}

func TestVerifyBatchAggregatesFailures(t *testing.T) {
	payload := make([]byte, 64*5+20)
	for i := range payload {
		payload[i] = byte(i)
	}
	f, err := file.New(payload, smallBranchOpts())
	if err != nil {
		t.Fatal(err)
	}
	addr, err := f.Address()
	if err != nil {
		t.Fatal(err)
	}
	hashFunc := swarm.NewKeccakHasher()

	n := totalSegments(len(payload))
	proofs := make([]file.InclusionProof, n)
	segments := make([][]byte, n)
	indices := make([]int, n)
	for i := 0; i < n; i++ {
		proof, err := f.InclusionProof(i)
		if err != nil {
			t.Fatal(err)
		}
		proofs[i] = proof
		segments[i] = segmentAt(payload, i)
		indices[i] = i
	}

	// Corrupt two of the segments so their proofs no longer reconstruct addr.
	segments[0] = segmentAt(make([]byte, len(payload)), 0)
	segments[1][0] ^= 0xff

	err = file.VerifyBatch(addr, proofs, segments, indices, hashFunc)
	if err == nil {
		t.Fatal("expected an aggregated error")
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("expected a *multierror.Error, got %T", err)
	}
	if len(merr.Errors) != 2 {
		t.Fatalf("got %d aggregated errors, want 2", len(merr.Errors))
	}
	for _, e := range merr.Errors {
		if !errors.Is(e, file.ErrProofMismatch) {
			t.Fatalf("error %v does not wrap ErrProofMismatch", e)
		}
	}
}

func TestVerifyBatchRejectsMismatchedSliceLengths(t *testing.T) {
	err := file.VerifyBatch(swarm.ZeroAddress, make([]file.InclusionProof, 2), make([][]byte, 1), make([]int, 2), swarm.NewKeccakHasher())
	if err == nil {
		t.Fatal("expected an error for mismatched slice lengths")
	}
}
