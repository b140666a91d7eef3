// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC information about this node
package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/counter"
	"github.com/bitmark-inc/recordd/dispatch"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Ledger   ledger.Service
	Registry dispatch.Registry
	counter  *counter.Counter
}

// New - create the node RPC service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, l ledger.Service, registry dispatch.Registry) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Ledger:   l,
		Registry: registry,
		counter:  counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain      string            `json:"chain"`
	RPCs       uint64            `json:"rpcs"`
	Statistics ledger.Statistics `json:"statistics"`
	Programs   []ProgramInfo     `json:"programs"`
	Version    string            `json:"version"`
	Uptime     string            `json:"uptime"`
}

// ProgramInfo - a configured record type
type ProgramInfo struct {
	Id            account.Account   `json:"id"`
	RecordName    string            `json:"recordName"`
	Capacity      int               `json:"capacity"`
	MaximumLength int               `json:"maximumLength"`
	Counter       bool              `json:"counter"`
	Mutation      string            `json:"mutation"`
	Invocations   dispatch.Counters `json:"invocations"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Ledger || nil == node.Registry {
		return fault.NotInitialised
	}

	programs := node.Registry.Programs()
	reply.Programs = make([]ProgramInfo, 0, len(programs))
	for _, p := range programs {
		schema := p.Schema()
		reply.Programs = append(reply.Programs, ProgramInfo{
			Id:            p.Id(),
			RecordName:    schema.Name(),
			Capacity:      schema.Capacity(),
			MaximumLength: schema.MaximumLength(),
			Counter:       schema.HasCounter(),
			Mutation:      p.Mutation().String(),
			Invocations:   node.Registry.Counters(p.Id()),
		})
	}

	reply.Chain = node.Ledger.Chain()
	reply.Statistics = node.Ledger.Statistics()
	if nil != node.counter {
		reply.RPCs = node.counter.Uint64()
	}
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}
