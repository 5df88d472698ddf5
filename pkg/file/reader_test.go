// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/ethersphere/swarmaddr/pkg/file"
	"github.com/ethersphere/swarmaddr/pkg/util/testutil"
)

func buildTestPayload(n int) []byte {
	payload := make([]byte, n)
	for i := range payload {
		payload[i] = byte(i)
	}
	return payload
}

func TestPayloadReaderReadAt(t *testing.T) {
	payload := buildTestPayload(64*5 + 20)
	f, err := file.New(payload, smallBranchOpts())
	if err != nil {
		t.Fatal(err)
	}
	r := file.NewPayloadReader(f)

	buf := make([]byte, 50)
	n, err := r.ReadAt(buf, 40)
	if err != nil {
		t.Fatal(err)
	}
	if n != 50 {
		t.Fatalf("got %d bytes, want 50", n)
	}
	if !bytes.Equal(buf, payload[40:90]) {
		t.Fatalf("ReadAt(40) mismatch")
	}
}

func TestPayloadReaderReadAtPastEnd(t *testing.T) {
	payload := buildTestPayload(64)
	f, err := file.New(payload, smallBranchOpts())
	if err != nil {
		t.Fatal(err)
	}
	r := file.NewPayloadReader(f)

	buf := make([]byte, 10)
	n, err := r.ReadAt(buf, 60)
	if err != io.EOF {
		t.Fatalf("got err=%v, want io.EOF", err)
	}
	if n != 4 {
		t.Fatalf("got %d bytes, want 4", n)
	}
	if !bytes.Equal(buf[:4], payload[60:64]) {
		t.Fatalf("trailing read mismatch")
	}
}

func TestPayloadReaderSequentialRead(t *testing.T) {
	payload := buildTestPayload(64*5 + 20)
	f, err := file.New(payload, smallBranchOpts())
	if err != nil {
		t.Fatal(err)
	}
	r := file.NewPayloadReader(f)

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("sequential read mismatch: got %d bytes, want %d", len(got), len(payload))
	}
}

func TestPayloadReaderSeek(t *testing.T) {
	payload := buildTestPayload(64*5 + 20)
	f, err := file.New(payload, smallBranchOpts())
	if err != nil {
		t.Fatal(err)
	}
	r := file.NewPayloadReader(f)

	off, err := r.Seek(100, io.SeekStart)
	if err != nil {
		t.Fatal(err)
	}
	if off != 100 {
		t.Fatalf("got offset %d, want 100", off)
	}

	buf := make([]byte, 20)
	n, err := r.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 20 || !bytes.Equal(buf, payload[100:120]) {
		t.Fatalf("read-after-seek mismatch")
	}

	if _, err := r.Seek(-1, io.SeekStart); err == nil {
		t.Fatal("expected an error for a negative seek position")
	}
}

func TestPrefetchingPayloadReaderMatchesPayload(t *testing.T) {
	payload := buildTestPayload(64*5 + 20)
	f, err := file.New(payload, smallBranchOpts())
	if err != nil {
		t.Fatal(err)
	}
	lr := file.NewPrefetchingPayloadReader(f, 64)
	testutil.CleanupCloser(t, lr)

	got, err := io.ReadAll(lr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("prefetching read mismatch: got %d bytes, want %d", len(got), len(payload))
	}
}
