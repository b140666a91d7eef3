// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS sockets serving the RPC server
package listeners

// Listener - a set of bound sockets
type Listener interface {
	Serve() error
	Close() error
}

const minConnectionCount = 1
