// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/messagebus"
)

const (
	heartbeatCommand  = "heart"
	heartbeatInterval = 60 * time.Second
)

// the part of a zmq.Socket used for sending
type sender interface {
	SendMessage(parts ...interface{}) (int, error)
}

type closer interface {
	Close() error
}

type broadcaster struct {
	log       *logger.L
	chain     string
	queue     <-chan messagebus.Message
	senders   []sender
	heartbeat time.Duration
}

func newBroadcaster(log *logger.L, chain string, queue <-chan messagebus.Message, senders []sender) *broadcaster {
	return &broadcaster{
		log:       log,
		chain:     chain,
		queue:     queue,
		senders:   senders,
		heartbeat: heartbeatInterval,
	}
}

// Run - wait for events and send them to all subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log
	log.Info("starting…")

	timer := time.NewTimer(brdc.heartbeat)
	defer timer.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			brdc.send(item.Command, item.Parameters)

		case <-timer.C:
			brdc.send(heartbeatCommand, [][]byte{[]byte(time.Now().UTC().Format(time.RFC3339))})
		}

		// any activity postpones the heartbeat
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(brdc.heartbeat)
	}

	log.Info("stopped")
}

func (brdc *broadcaster) send(command string, parameters [][]byte) {
	parts := make([]interface{}, 0, 2+len(parameters))
	parts = append(parts, brdc.chain, command)
	for _, p := range parameters {
		parts = append(parts, p)
	}

	for i, s := range brdc.senders {
		_, err := s.SendMessage(parts...)
		if nil != err {
			brdc.log.Errorf("send[%d]: command: %s  error: %s", i, command, err)
			continue
		}
	}
	brdc.log.Debugf("sent: %s", command)
}

func (brdc *broadcaster) close() {
	for _, s := range brdc.senders {
		if c, ok := s.(closer); ok {
			c.Close()
		}
	}
}
