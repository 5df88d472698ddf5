// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address <file>",
		Short: "Print the file's content address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildFile(args[0])
			if err != nil {
				return err
			}
			addr, err := f.Address()
			if err != nil {
				return err
			}
			fmt.Println(addr.String())
			return nil
		},
	}
}
