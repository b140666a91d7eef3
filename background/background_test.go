// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/background"
)

type ticker struct {
	ticks    uint64
	finished uint64
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(interval):
			atomic.AddUint64(&state.ticks, 1)
		}
	}
	atomic.StoreUint64(&state.finished, 1)
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.Equal(t, uint64(1), atomic.LoadUint64(&proc1.finished), "first did not finish")
	assert.Equal(t, uint64(1), atomic.LoadUint64(&proc2.finished), "second did not finish")
	assert.NotZero(t, atomic.LoadUint64(&proc1.ticks), "first never ran")

	// no further ticks after stop
	ticks := atomic.LoadUint64(&proc1.ticks)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, ticks, atomic.LoadUint64(&proc1.ticks), "ticked after stop")

	// harmless
	p.Stop()
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}
