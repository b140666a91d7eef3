// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)
	assert.Nil(t, ratelimit.Limit(limiter), "wrong Limit")

	// zero burst can never be satisfied
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(rate.NewLimiter(1, 0)), "wrong zero burst")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	items := []struct {
		count int
		err   error
	}{
		{1, nil},
		{50, nil},
		{100, nil},
		{0, fault.InvalidCount},
		{-1, fault.InvalidCount},
		{101, fault.InvalidCount},
	}

	for i, item := range items {
		err := ratelimit.LimitN(limiter, item.count, 100, fault.InvalidCount)
		assert.Equal(t, item.err, err, "%d: count: %d", i, item.count)
	}

	// burst smaller than a valid count
	err := ratelimit.LimitN(rate.NewLimiter(1000, 5), 10, 100, fault.InvalidCount)
	assert.Equal(t, fault.RateLimiting, err, "wrong over burst")

	// caller chooses the out of range error
	err = ratelimit.LimitN(limiter, 0, 100, fault.MissingParameters)
	assert.Equal(t, fault.MissingParameters, err, "wrong caller error")

	// exhausted limiter reports throttling before range
	err = ratelimit.LimitN(rate.NewLimiter(1, 0), 0, 100, fault.InvalidCount)
	assert.Equal(t, fault.RateLimiting, err, "wrong zero burst")
}
