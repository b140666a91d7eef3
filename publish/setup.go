// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast record events to ZeroMQ subscribers
//
// every allocation and mutation committed by the ledger is sent as a
// multipart message:
//
//   chain ++ command ++ address ++ change(JSON)
//
// and a heartbeat is sent when the ledger is idle
package publish

import (
	"sync"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/background"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/messagebus"
	"github.com/bitmark-inc/recordd/zmqutil"
)

const (
	zapDomain = "publish"
)

// Configuration - a block of configuration data
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc *broadcaster // for broadcasting record changes

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - bind the broadcast sockets and start sending
//
// an empty broadcast list disables publishing
func Initialise(configuration *Configuration, chain string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("publish")
	globalData.log = log
	log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		log.Info("disabled: no broadcast addresses")
		globalData.initialised = true
		return nil
	}

	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return err
	}

	if err := zmqutil.StartAuthentication(); nil != err {
		return err
	}

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, configuration.Broadcast)
	if nil != err {
		return err
	}

	senders := make([]sender, 0, 2)
	if nil != socket4 {
		senders = append(senders, socket4)
	}
	if nil != socket6 {
		senders = append(senders, socket6)
	}

	globalData.brdc = newBroadcaster(log, chain, messagebus.Bus.Broadcast.Chan(-1), senders)

	// all data initialised
	globalData.initialised = true

	log.Info("start background…")

	processes := background.Processes{
		globalData.brdc,
	}
	globalData.background = background.Start(processes, log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	globalData.background = nil

	if nil != globalData.brdc {
		messagebus.Bus.Broadcast.Release(globalData.brdc.queue)
		globalData.brdc.close()
		globalData.brdc = nil
	}

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
