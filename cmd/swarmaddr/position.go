// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ethersphere/swarmaddr/pkg/file"
	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

func positionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "position <segment-index> <total-length>",
		Short: "Print the {level, chunk_index} pair for a payload segment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			segmentIndex, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid segment index %q: %w", args[0], err)
			}
			totalLength, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid total length %q: %w", args[1], err)
			}

			maxPayload := maxPayloadSize
			if maxPayload == 0 {
				maxPayload = swarm.DefaultMaxPayloadSize
			}

			pos, err := file.PositionOfSegment(segmentIndex, totalLength, maxPayload)
			if err != nil {
				return err
			}
			fmt.Printf("level=%d chunk_index=%d\n", pos.Level, pos.ChunkIndex)
			return nil
		},
	}
}
