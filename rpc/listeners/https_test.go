// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/rpc"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/rpc/handler"
	"github.com/bitmark-inc/recordd/rpc/listeners"
	"github.com/bitmark-inc/recordd/rpc/mocks"
)

func TestHTTPSListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockService(ctl)
	l.EXPECT().Chain().Return("testing").Times(1)
	l.EXPECT().Statistics().Return(ledger.Statistics{Accepted: 1}).Times(1)

	log := logger.New(fixtures.LogCategory)
	port := rand.Intn(30000) + 30000
	con := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Allow: map[string][]string{
			"details": {"127.0.0.0/8", " ::1/128"},
		},
	}

	tlsConfig, _ := serverTLS(t)
	hdlr := handler.New(log, rpc.NewServer(), time.Now(), "1.0", l, con.MaximumConnections)

	h, err := listeners.NewHTTPS(&con, log, tlsConfig, hdlr)
	require.Nil(t, err, "wrong NewHTTPS")
	require.NotNil(t, h, "missing listener")

	err = h.Serve()
	require.Nil(t, err, "wrong Serve")
	defer h.Close()

	client := &http.Client{
		Timeout: 5 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	resp, err := client.Get(fmt.Sprintf("https://127.0.0.1:%d/recordd/details", port))
	require.Nil(t, err, "details request")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")

	var reply struct {
		Chain string `json:"chain"`
	}
	err = json.NewDecoder(resp.Body).Decode(&reply)
	assert.Nil(t, err, "decode")
	assert.Equal(t, "testing", reply.Chain, "wrong chain")

	missing, err := client.Get(fmt.Sprintf("https://127.0.0.1:%d/no/such/path", port))
	require.Nil(t, err, "root request")
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode, "wrong status code")
}

func TestHTTPSListenerDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	log := logger.New(fixtures.LogCategory)
	hdlr := handler.New(log, rpc.NewServer(), time.Now(), "1.0", mocks.NewMockService(ctl), 1)

	h, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, log, &tls.Config{}, hdlr)
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, h, "listener must be disabled")
}

func TestHTTPSListenerInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	log := logger.New(fixtures.LogCategory)
	hdlr := handler.New(log, rpc.NewServer(), time.Now(), "1.0", mocks.NewMockService(ctl), 1)

	con := listeners.HTTPSConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2131"},
	}
	_, err := listeners.NewHTTPS(&con, log, &tls.Config{}, hdlr)
	assert.Equal(t, fault.MissingParameters, err, "wrong maximum connections")

	con = listeners.HTTPSConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:2131"},
		Allow: map[string][]string{
			"details": {"not-a-cidr"},
		},
	}
	_, err = listeners.NewHTTPS(&con, log, &tls.Config{}, hdlr)
	assert.NotNil(t, err, "invalid CIDR accepted")
}

func TestParseAllow(t *testing.T) {
	allow, err := listeners.ParseAllow(map[string][]string{
		"details": {"192.0.2.0/24", " 2001:db8::/32 "},
	})
	require.Nil(t, err, "wrong ParseAllow")
	require.Equal(t, 2, len(allow["details"]), "wrong count")
	assert.Equal(t, "192.0.2.0/24", allow["details"][0].String(), "wrong IPv4 network")
	assert.Equal(t, "2001:db8::/32", allow["details"][1].String(), "wrong IPv6 network")

	_, err = listeners.ParseAllow(map[string][]string{"details": {"192.0.2.1"}})
	assert.NotNil(t, err, "address without mask accepted")
}
