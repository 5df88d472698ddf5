// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command swarmaddr exposes the chunking core as a command-line tool:
// computing a file's content address, producing and verifying segment
// inclusion proofs, and reporting where a segment lands in the tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	swarmaddr "github.com/ethersphere/swarmaddr"
)

var maxPayloadSize int

func main() {
	root := &cobra.Command{
		Use:     "swarmaddr",
		Short:   "Compute and verify Swarm content addresses",
		Version: swarmaddr.Version,
	}
	root.PersistentFlags().IntVar(&maxPayloadSize, "max-payload-size", 0, "chunk payload capacity in bytes (default 4096)")

	root.AddCommand(addressCmd())
	root.AddCommand(proofCmd())
	root.AddCommand(verifyCmd())
	root.AddCommand(positionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
