// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ethersphere/swarmaddr/pkg/file"
	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file> <segment-index> <proof-file>",
		Short: "Recompute a file address from a proof and exit non-zero on mismatch",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			segmentIndex, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid segment index %q: %w", args[1], err)
			}

			payload, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			proofBytes, err := os.ReadFile(args[2])
			if err != nil {
				return err
			}
			var proof file.InclusionProof
			if err := json.Unmarshal(proofBytes, &proof); err != nil {
				return fmt.Errorf("decoding proof: %w", err)
			}

			segment := segmentAt(payload, segmentIndex)

			hashFunc := swarm.NewKeccakHasher()
			got, err := file.FileAddressFromInclusionProof(proof, segment, hashFunc)
			if err != nil {
				return err
			}

			f, err := buildFile(args[0])
			if err != nil {
				return err
			}
			want, err := f.Address()
			if err != nil {
				return err
			}

			if !got.Equal(want) {
				return fmt.Errorf("proof mismatch: got %s, want %s", got, want)
			}
			fmt.Println(got.String())
			return nil
		},
	}
}

// segmentAt extracts the 32-byte, zero-padded segment at segmentIndex from
// payload, matching how the in-chunk BMT addresses its zero-padded leaves.
func segmentAt(payload []byte, segmentIndex int) []byte {
	segment := make([]byte, swarm.SectionSize)
	start := segmentIndex * swarm.SectionSize
	if start >= len(payload) {
		return segment
	}
	end := start + swarm.SectionSize
	if end > len(payload) {
		end = len(payload)
	}
	copy(segment, payload[start:end])
	return segment
}
