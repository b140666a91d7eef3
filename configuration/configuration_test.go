// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/configuration"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/rent"
)

const minimalConfiguration = `
local M = {}
M.data_directory = "."
M.chain = "local"
return M
`

const fullConfiguration = `
local M = {}

M.data_directory = "."
M.pidfile = "recordd.pid"
M.chain = "testing"
M.airdrop_limit = 5000

M.database = {
    directory = "db",
    name = "records.leveldb",
}

M.rent = {
    per_byte_year = 10,
    years = 3,
}

M.programs = {
    {
        record_name = "NoteAccount",
        maximum_length = 64,
        mutation = "owner",
    },
    {
        id = "8QsPEsAGDUbbCdqoQJXbrY7ys1yHSZDk6UDdWk4smHnh",
        record_name = "CounterAccount",
        maximum_length = 16,
        counter = true,
        mutation = "anyone",
        default_payload = "hi",
    },
}

M.client_rpc = {
    maximum_connections = 7,
    listen = { "127.0.0.1:2130", "[::1]:2130" },
    certificate = "rpc.crt",
    private_key = "rpc.key",
}

M.https_rpc = {
    maximum_connections = 3,
    listen = { "127.0.0.1:2131" },
    certificate = "rpc.crt",
    private_key = "rpc.key",
    allow = {
        details = { "127.0.0.0/8" },
    },
}

M.publishing = {
    broadcast = { "127.0.0.1:2135" },
    private_key = "publish.private",
    public_key = "/etc/recordd/publish.public",
}

M.logging = {
    size = 4096,
    count = 3,
    console = false,
    levels = {
        DEFAULT = "info",
        ledger = "debug",
    },
}

return M
`

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temporary directory")
	dir, err = filepath.EvalSymlinks(dir)
	require.Nil(t, err, "temporary directory path")

	fileName := filepath.Join(dir, "recordd.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write configuration")
	return dir, fileName
}

func TestGetDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, minimalConfiguration)
	defer os.RemoveAll(dir)

	c, err := configuration.Get(fileName)
	require.Nil(t, err, "wrong Get")

	assert.Equal(t, dir, c.DataDirectory, "wrong data directory")
	assert.Equal(t, chain.Local, c.Chain, "wrong chain")
	assert.Equal(t, filepath.Join(dir, "data"), c.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, "data", "local.leveldb"), c.Database.Name, "wrong database")
	assert.Equal(t, rent.Default(), c.Rent, "wrong rent")
	assert.Equal(t, configuration.DefaultPrograms(), c.Programs, "wrong programs")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), c.HttpsRPC.PrivateKey, "wrong https key")
	assert.Equal(t, filepath.Join(dir, "publish.public"), c.Publishing.PublicKey, "wrong publish key")
	assert.Equal(t, 0, len(c.Publishing.Broadcast), "publishing must default to off")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, "", c.PidFile, "wrong pid file")

	info, err := os.Stat(c.Logging.Directory)
	require.Nil(t, err, "log directory")
	assert.True(t, info.IsDir(), "log directory was not created")
}

func TestGetFull(t *testing.T) {
	dir, fileName := writeConfiguration(t, fullConfiguration)
	defer os.RemoveAll(dir)

	c, err := configuration.Get(fileName)
	require.Nil(t, err, "wrong Get")

	assert.Equal(t, chain.Testing, c.Chain, "wrong chain")
	assert.Equal(t, filepath.Join(dir, "recordd.pid"), c.PidFile, "wrong pid file")
	assert.Equal(t, uint64(5000), c.AirdropLimit, "wrong airdrop limit")
	assert.Equal(t, filepath.Join(dir, "db", "records.leveldb"), c.Database.Name, "wrong database")
	assert.Equal(t, rent.Rate{PerByteYear: 10, Years: 3}, c.Rent, "wrong rent")

	assert.Equal(t, uint64(7), c.ClientRPC.MaximumConnections, "wrong rpc connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "wrong rpc listen")
	assert.Equal(t, []string{"127.0.0.0/8"}, c.HttpsRPC.Allow["details"], "wrong allow")
	assert.Equal(t, "/etc/recordd/publish.public", c.Publishing.PublicKey, "absolute path changed")
	assert.Equal(t, filepath.Join(dir, "publish.private"), c.Publishing.PrivateKey, "wrong private key")
	assert.Equal(t, "debug", c.Logging.Levels["ledger"], "wrong log level")

	require.Equal(t, 2, len(c.Programs), "wrong program count")
	programs, err := configuration.Programs(c.Programs)
	require.Nil(t, err, "wrong Programs")

	assert.Equal(t, configuration.ProgramId("NoteAccount"), programs[0].Id, "wrong derived id")
	assert.Equal(t, 64, programs[0].MaximumLength, "wrong length")
	assert.Equal(t, "8QsPEsAGDUbbCdqoQJXbrY7ys1yHSZDk6UDdWk4smHnh", programs[1].Id.String(), "wrong id")
	assert.True(t, programs[1].Counter, "wrong counter")
	assert.Equal(t, "hi", programs[1].DefaultPayload, "wrong default payload")
	assert.Equal(t, "anyone", programs[1].Mutation.String(), "wrong mutation")
}

func TestGetInvalid(t *testing.T) {
	items := []string{
		`local M = {} M.data_directory = "." M.chain = "bitcoin" return M`,
		`local M = {} M.data_directory = "" M.chain = "local" return M`,
		`local M = {} M.data_directory = "/no/such/directory" M.chain = "local" return M`,
		`local M = {} M.data_directory = "." M.chain = "local" M.logging = { file = "a/b.log" } return M`,
		`local M = {} M.data_directory = "." M.chain = "local" M.programs = { { record_name = "Bad Name", maximum_length = 5 } } return M`,
		`local M = {} M.data_directory = "." M.chain = "local" M.programs = { { record_name = "Zero", maximum_length = 0 } } return M`,
		`local M = {} M.data_directory = "." M.chain = "local" M.programs = { { record_name = "A", maximum_length = 5, mutation = "nobody" } } return M`,
		`this is not lua`,
	}

	for i, text := range items {
		dir, fileName := writeConfiguration(t, text)
		_, err := configuration.Get(fileName)
		assert.NotNil(t, err, "%d: invalid configuration accepted", i)
		os.RemoveAll(dir)
	}
}

func TestParseNotTable(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return 42`)
	defer os.RemoveAll(dir)

	var c configuration.Configuration
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Equal(t, fault.NotConfigurationTable, err, "wrong error")

	err = configuration.ParseConfigurationFile(fileName, c)
	assert.Equal(t, fault.InvalidStructPointer, err, "wrong non pointer error")
}

func TestPrograms(t *testing.T) {
	programs, err := configuration.Programs(configuration.DefaultPrograms())
	require.Nil(t, err, "wrong default programs")
	require.Equal(t, 2, len(programs), "wrong count")

	assert.Equal(t, configuration.MessageRecordName, programs[0].RecordName, "wrong message name")
	assert.Equal(t, configuration.MessageLength, programs[0].MaximumLength, "wrong message length")
	assert.False(t, programs[0].Counter, "message has no counter")
	assert.Equal(t, "owner", programs[0].Mutation.String(), "wrong message policy")

	assert.Equal(t, configuration.GreetingRecordName, programs[1].RecordName, "wrong greeting name")
	assert.True(t, programs[1].Counter, "greeting has a counter")
	assert.Equal(t, "anyone", programs[1].Mutation.String(), "wrong greeting policy")
	assert.Equal(t, configuration.GreetingDefaultText, programs[1].DefaultPayload, "wrong default")

	assert.NotEqual(t, programs[0].Id, programs[1].Id, "ids must differ")
	assert.Equal(t, configuration.ProgramId(configuration.MessageRecordName), programs[0].Id, "id must be derived")
}

func TestProgramsInvalid(t *testing.T) {
	_, err := configuration.Programs(nil)
	assert.Equal(t, fault.MissingParameters, err, "empty list")

	duplicateName := []configuration.ProgramConfiguration{
		{RecordName: "A", MaximumLength: 1, Id: "8QsPEsAGDUbbCdqoQJXbrY7ys1yHSZDk6UDdWk4smHnh"},
		{RecordName: "A", MaximumLength: 1},
	}
	_, err = configuration.Programs(duplicateName)
	assert.Equal(t, fault.DuplicateRecordName, err, "duplicate name")

	duplicateId := []configuration.ProgramConfiguration{
		{RecordName: "A", MaximumLength: 1, Id: "8QsPEsAGDUbbCdqoQJXbrY7ys1yHSZDk6UDdWk4smHnh"},
		{RecordName: "B", MaximumLength: 1, Id: "8QsPEsAGDUbbCdqoQJXbrY7ys1yHSZDk6UDdWk4smHnh"},
	}
	_, err = configuration.Programs(duplicateId)
	assert.Equal(t, fault.AlreadyRegistered, err, "duplicate id")

	badId := []configuration.ProgramConfiguration{
		{RecordName: "A", MaximumLength: 1, Id: "abc"},
	}
	_, err = configuration.Programs(badId)
	assert.NotNil(t, err, "short id accepted")
}

func TestLoadCertificates(t *testing.T) {
	dir, fileName := writeConfiguration(t, minimalConfiguration)
	defer os.RemoveAll(dir)

	c, err := configuration.Get(fileName)
	require.Nil(t, err, "wrong Get")

	err = c.LoadCertificates()
	assert.True(t, os.IsNotExist(err), "missing certificate accepted: %v", err)

	err = ioutil.WriteFile(filepath.Join(dir, "rpc.crt"), []byte("CERTIFICATE"), 0600)
	require.Nil(t, err, "write certificate")
	err = ioutil.WriteFile(filepath.Join(dir, "rpc.key"), []byte("KEY"), 0600)
	require.Nil(t, err, "write key")

	c, err = configuration.Get(fileName)
	require.Nil(t, err, "wrong Get")

	err = c.LoadCertificates()
	require.Nil(t, err, "wrong LoadCertificates")
	assert.Equal(t, "CERTIFICATE", c.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, "KEY", c.ClientRPC.PrivateKey, "wrong key")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.CertificateFiles["client_rpc.certificate"], "wrong file name")
}

func TestSampleConfiguration(t *testing.T) {
	sample, err := ioutil.ReadFile(filepath.Join("..", "command", "recordd", "recordd.conf.sample"))
	require.Nil(t, err, "read sample")

	dir, fileName := writeConfiguration(t, string(sample))
	defer os.RemoveAll(dir)

	c, err := configuration.Get(fileName)
	require.Nil(t, err, "sample must be valid")

	assert.Equal(t, chain.Testing, c.Chain, "wrong chain")
	assert.Equal(t, []string{"127.0.0.0/8", "::1/128"}, c.HttpsRPC.Allow["details"], "wrong allow")

	programs, err := configuration.Programs(c.Programs)
	require.Nil(t, err, "sample programs")
	require.Equal(t, 2, len(programs), "wrong program count")
	assert.Equal(t, configuration.ProgramId(configuration.MessageRecordName), programs[0].Id, "message id")
	assert.Equal(t, configuration.ProgramId(configuration.GreetingRecordName), programs[1].Id, "greeting id")
}
