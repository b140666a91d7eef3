// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/recordd/configuration"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/fixtures"
)

func TestMakeSelfSignedCertificate(t *testing.T) {
	dir, err := ioutil.TempDir("", "recordd")
	require.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	certificate := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")

	err = makeSelfSignedCertificate("rpc", certificate, key, true, []string{"127.0.0.1"})
	require.Nil(t, err, "wrong makeSelfSignedCertificate")

	_, err = tls.LoadX509KeyPair(certificate, key)
	assert.Nil(t, err, "unusable key pair")

	err = makeSelfSignedCertificate("rpc", certificate, key, true, nil)
	assert.Equal(t, fault.CertificateFileExists, err, "certificate overwritten")

	err = os.Remove(certificate)
	require.Nil(t, err, "remove certificate")
	err = makeSelfSignedCertificate("rpc", certificate, key, true, nil)
	assert.Equal(t, fault.KeyFileExists, err, "key overwritten")
}

func TestGetFilenameWithDirectory(t *testing.T) {
	assert.Equal(t, "rpc.crt", getFilenameWithDirectory(nil, "rpc.crt"), "default directory")
	assert.Equal(t, "/etc/recordd/rpc.crt", getFilenameWithDirectory([]string{"/etc/recordd"}, "rpc.crt"), "given directory")
}

func TestCreateDispatcher(t *testing.T) {
	d, err := createDispatcher(nil)
	assert.Equal(t, fault.MissingParameters, err, "empty program list")
	assert.Nil(t, d, "dispatcher without programs")

	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	d, err = createDispatcher(configuration.DefaultPrograms())
	require.Nil(t, err, "wrong createDispatcher")
	assert.Equal(t, 2, len(d.Programs()), "wrong program count")

	_, ok := d.Program(configuration.ProgramId(configuration.GreetingRecordName))
	assert.True(t, ok, "greeting not registered")
}
