// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swarmaddr implements Swarm's content-addressing scheme: chunking
// a payload, building its per-chunk and file-level Binary Merkle Trees, and
// producing or verifying inclusion proofs against the resulting address.
package swarmaddr

var (
	version    = "1.1.0" // manually set semantic version number
	commitHash string    // automatically set git commit hash

	// Version is the module's release identifier, reported by cmd/swarmaddr.
	Version = func() string {
		if commitHash != "" {
			return version + "-" + commitHash
		}
		return version + "-dev"
	}()
)
