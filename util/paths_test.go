// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		file      string
		expected  string
	}{
		{"/var/lib/recordd", "data", "/var/lib/recordd/data"},
		{"/var/lib/recordd", "./log/../log", "/var/lib/recordd/log"},
		{"/var/lib/recordd", "/etc/recordd/rpc.crt", "/etc/recordd/rpc.crt"},
		{"/var/lib/recordd/", "local.leveldb", "/var/lib/recordd/local.leveldb"},
	}

	for i, item := range items {
		assert.Equal(t, item.expected, util.EnsureAbsolute(item.directory, item.file), "%d: wrong path", i)
	}
}

func TestResolveAll(t *testing.T) {
	database := "data"
	certificate := "/etc/recordd/rpc.crt"
	pid := ""
	log := "log"

	util.ResolveAll("/var/lib/recordd", false, &database, &certificate)
	util.ResolveAll("/var/lib/recordd", true, &pid, &log)

	assert.Equal(t, "/var/lib/recordd/data", database, "relative")
	assert.Equal(t, "/etc/recordd/rpc.crt", certificate, "absolute")
	assert.Equal(t, "", pid, "optional blank")
	assert.Equal(t, "/var/lib/recordd/log", log, "optional set")
}

func TestIsPlainName(t *testing.T) {
	items := []struct {
		name     string
		expected bool
	}{
		{"recordd.leveldb", true},
		{"./recordd.leveldb", true},
		{"data/recordd.leveldb", false},
		{"/tmp/recordd.log", false},
	}

	for i, item := range items {
		assert.Equal(t, item.expected, util.IsPlainName(item.name), "%d: %q", i, item.name)
	}
}

func TestFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "paths")
	assert.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "present")
	assert.False(t, util.FileExists(name), "file should not exist yet")

	err = ioutil.WriteFile(name, []byte("x"), 0600)
	assert.Nil(t, err, "write")
	assert.True(t, util.FileExists(name), "file should exist")

	assert.False(t, util.FileExists(dir), "directory is not a file")
}
