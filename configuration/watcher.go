// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/util"
)

// editors often write a file in several steps
const settleDelay = 2 * time.Second

// Watcher - reports changes to a configuration file
type Watcher struct {
	sync.Mutex
	log      *logger.L
	watcher  *fsnotify.Watcher
	fileName string
	delay    time.Duration
	changed  func(*Configuration)
	done     chan struct{}
}

// Watch - call changed with the newly parsed configuration every time
// the file is written
//
// the directory is watched rather than the file so that editors that
// replace the file by renaming are seen; a file that fails to parse is
// logged and ignored
func Watch(log *logger.L, fileName string, changed func(*Configuration)) (*Watcher, error) {
	return watch(log, fileName, settleDelay, changed)
}

func watch(log *logger.L, fileName string, delay time.Duration, changed func(*Configuration)) (*Watcher, error) {
	if nil == changed {
		return nil, fault.MissingParameters
	}

	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}
	if !util.FileExists(filePath) {
		return nil, fault.NotFound
	}

	fw, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	if err := fw.Add(filepath.Dir(filePath)); nil != err {
		log.Errorf("watcher add error: %s", err)
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		log:      log,
		watcher:  fw,
		fileName: filePath,
		delay:    delay,
		changed:  changed,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	var timer <-chan time.Time

loop:
	for {
		select {
		case <-w.done:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.fileName {
				continue loop
			}
			if !isChange(event) {
				w.log.Debugf("ignore file event: %v", event)
				continue loop
			}
			w.log.Infof("file event: %v", event)
			timer = time.After(w.delay)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)

		case <-timer:
			timer = nil
			configuration, err := Get(w.fileName)
			if nil != err {
				w.log.Errorf("reload: %q  error: %s", w.fileName, err)
				continue loop
			}
			w.log.Info("configuration reloaded")
			w.changed(configuration)
		}
	}
}

// Close - stop watching
func (w *Watcher) Close() error {
	w.Lock()
	defer w.Unlock()

	select {
	case <-w.done:
		return fault.NotInitialised
	default:
	}
	close(w.done)
	return w.watcher.Close()
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
