// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/ethersphere/swarmaddr/pkg/file"
)

func buildFile(path string) (*file.ChunkedFile, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var opts *file.Options
	if maxPayloadSize > 0 {
		opts = &file.Options{MaxPayloadSize: maxPayloadSize}
	}
	return file.New(payload, opts)
}
