// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Live, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "valid: %s", name)
	}
	for _, name := range []string{"", "bitmark", "LIVE"} {
		assert.False(t, chain.Valid(name), "invalid: %q", name)
	}
	assert.True(t, chain.IsLive(chain.Live), "live")
	assert.False(t, chain.IsLive(chain.Local), "local")
}
