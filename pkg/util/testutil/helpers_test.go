// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testutil_test

import (
	"testing"

	"github.com/ethersphere/swarmaddr/pkg/util/testutil"
)

func TestRandBytes(t *testing.T) {
	t.Parallel()

	got := testutil.RandBytes(t, 32)
	if len(got) != 32 {
		t.Fatalf("got %d bytes, want 32", len(got))
	}
}
