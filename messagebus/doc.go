// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in process broadcast of record events
//
// every listener gets its own buffered channel; a listener that falls
// behind loses messages rather than blocking the sender
package messagebus
