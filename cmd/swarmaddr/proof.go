// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func proofCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "proof <file> <segment-index>",
		Short: "Print a JSON-encoded inclusion proof for a payload segment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			segmentIndex, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid segment index %q: %w", args[1], err)
			}

			f, err := buildFile(args[0])
			if err != nil {
				return err
			}

			proof, err := f.InclusionProof(segmentIndex)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(proof)
		},
	}
}
