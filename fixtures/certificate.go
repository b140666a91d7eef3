// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
)

var (
	certificateOnce sync.Once
	certificatePEM  string
	privateKeyPEM   string
)

// Certificate - a self signed certificate and its private key in PEM
// form, generated once per test binary
func Certificate() (string, string) {
	certificateOnce.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair("recordd test certificate", validUntil, false, []string{"127.0.0.1"})
		if nil != err {
			panic(err)
		}
		certificatePEM = string(cert)
		privateKeyPEM = string(key)
	})
	return certificatePEM, privateKeyPEM
}
