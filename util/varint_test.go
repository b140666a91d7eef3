// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/recordd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff, 0xff},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestFromVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		buffer := append(append([]byte{}, item.encoded...), 0xff, 0x97)
		result, count := util.FromVarint64(buffer)
		if result != item.value {
			t.Errorf("%d: FromVarint64(%x) -> %d  expected: %d", i, buffer, result, item.value)
		}
		if count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) count: %d  expected: %d", i, buffer, count, len(item.encoded))
		}
	}
}

func TestFromVarint64Truncated(t *testing.T) {
	for i, item := range varint64TruncatedTests {
		result, count := util.FromVarint64(item)
		if 0 != result || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}
}

func TestClippedVarint64(t *testing.T) {
	if v, n := util.ClippedVarint64([]byte{0x80, 0x01}, 1, 200); 128 != v || 2 != n {
		t.Errorf("in range: got %d, %d", v, n)
	}
	if v, n := util.ClippedVarint64([]byte{0x80, 0x01}, 1, 100); 0 != v || 0 != n {
		t.Errorf("above maximum: got %d, %d", v, n)
	}
	if v, n := util.ClippedVarint64([]byte{0x00}, 1, 100); 0 != v || 0 != n {
		t.Errorf("below minimum: got %d, %d", v, n)
	}
}

func TestBytesField(t *testing.T) {
	buffer := util.AppendBytes(nil, []byte("hello"))
	buffer = util.AppendBytes(buffer, []byte{})

	data, n := util.ClippedBytes(buffer, 100)
	if "hello" != string(data) || 6 != n {
		t.Fatalf("first field: %q, %d", data, n)
	}
	data, m := util.ClippedBytes(buffer[n:], 100)
	if 0 != len(data) || 1 != m {
		t.Fatalf("second field: %q, %d", data, m)
	}

	if _, n := util.ClippedBytes(buffer[:3], 100); 0 != n {
		t.Errorf("truncated field accepted")
	}
	if _, n := util.ClippedBytes(buffer, 4); 0 != n {
		t.Errorf("over long field accepted")
	}
}
