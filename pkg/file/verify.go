// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

// ErrProofMismatch is returned (wrapped, once per failing entry inside the
// *multierror.Error from VerifyBatch) when a proof does not reconstruct the
// expected file address.
var ErrProofMismatch = fmt.Errorf("file: proof does not reconstruct the expected address")

// VerifyBatch checks a set of independently produced inclusion proofs
// against one file address, collecting every failure instead of stopping
// at the first one. proofs, segments and indices must be parallel slices
// of equal length; indices is informational and only used for error
// messages.
func VerifyBatch(fileAddress swarm.Address, proofs []InclusionProof, segments [][]byte, indices []int, hashFunc swarm.HashFunc) error {
	if len(proofs) != len(segments) || len(proofs) != len(indices) {
		return fmt.Errorf("file: VerifyBatch requires parallel slices, got %d proofs, %d segments, %d indices", len(proofs), len(segments), len(indices))
	}

	var result *multierror.Error
	for i, proof := range proofs {
		addr, err := FileAddressFromInclusionProof(proof, segments[i], hashFunc)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("segment %d: %w", indices[i], err))
			continue
		}
		if !addr.Equal(fileAddress) {
			result = multierror.Append(result, fmt.Errorf("segment %d: %w: got %s, want %s", indices[i], ErrProofMismatch, addr, fileAddress))
		}
	}
	return result.ErrorOrNil()
}
