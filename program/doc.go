// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package program - handlers for one record type
//
// a program owns every record it allocates; the host resolves the
// accounts of an invocation into AccountRef values and commits the
// changed Data only when the handler returns without error
package program

//go:generate mockgen -destination=mocks/host.go -package=mocks github.com/bitmark-inc/recordd/program Host
