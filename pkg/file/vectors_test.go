// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file_test

import (
	"fmt"
	"testing"

	"github.com/ethersphere/swarmaddr/pkg/file"
	filetesting "github.com/ethersphere/swarmaddr/pkg/file/testing"
)

// TestAddressMatchesReferenceVectors exercises default (4096-byte chunk,
// 128-way) branching at sizes too large to hand-construct, including the
// carrier-promotion boundary at leaf counts 128, 129 and 130.
func TestAddressMatchesReferenceVectors(t *testing.T) {
	for i := 0; i < filetesting.GetVectorCount(); i++ {
		i := i
		t.Run(fmt.Sprintf("vector-%d", i), func(t *testing.T) {
			data, want := filetesting.GetVector(t, i)
			f, err := file.New(data, nil)
			if err != nil {
				t.Fatal(err)
			}
			got, err := f.Address()
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(want) {
				t.Fatalf("vector %d: address = %s, want %s", i, got, want)
			}
		})
	}
}
