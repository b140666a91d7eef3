// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// default listener buffer
const defaultQueueSize = 1000

// Message - a command and its packed parameters
type Message struct {
	Command    string   // type of packed item
	Parameters [][]byte // array of parameters
}

// BroadcastQueue - fan out to every listener
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan Message
}

// Bus - the queues
var Bus = struct {
	Broadcast *BroadcastQueue
}{
	Broadcast: &BroadcastQueue{},
}

// Chan - register a new listener
//
// size <= 0 selects the default buffer size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - remove a listener and close its channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, l := range queue.listeners {
		if (<-chan Message)(l) == c {
			close(l)
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			return
		}
	}
}

// Send - deliver to every listener that has room
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, l := range queue.listeners {
		select {
		case l <- m:
		default:
		}
	}
}

// Listeners - number of registered listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.listeners)
}
