// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/recordd/fault"
)

// test encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := "The Quick Brown Fox Jumps Over The Lazy Dog"

	passwords := []string{"test", "123", "444", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for i, password := range passwords {
		salt, key, err := hashPassword(password)
		require.Nil(t, err, "%d: hash", i)

		encrypted, err := encryptData(plainText, key)
		require.Nil(t, err, "%d: encrypt", i)

		key2, err := generateKey(password, salt)
		require.Nil(t, err, "%d: generate key", i)
		assert.Equal(t, key, key2, "%d: key is deterministic", i)

		decrypted, err := decryptData(encrypted, key2)
		require.Nil(t, err, "%d: decrypt", i)
		assert.Equal(t, plainText, decrypted, "%d: plaintext", i)

		again, err := encryptData(plainText, key)
		require.Nil(t, err, "%d: encrypt again", i)
		assert.NotEqual(t, encrypted, again, "%d: nonce must differ", i)
	}
}

func TestDecryptWrongKey(t *testing.T) {
	_, key, err := hashPassword("correct horse")
	require.Nil(t, err, "hash")
	salt, _, err := hashPassword("battery staple")
	require.Nil(t, err, "hash")

	encrypted, err := encryptData(strings.Repeat("s", 64), key)
	require.Nil(t, err, "encrypt")

	wrong, err := generateKey("battery staple", salt)
	require.Nil(t, err, "wrong key")

	_, err = decryptData(encrypted, wrong)
	assert.Equal(t, fault.CryptoFailed, err, "wrong key")

	_, err = decryptData("", key)
	assert.Equal(t, fault.CryptoFailed, err, "empty")

	_, err = decryptData(encrypted[:40], key)
	assert.Equal(t, fault.CryptoFailed, err, "nonce only")
}

func TestEncryptLength(t *testing.T) {
	_, key, err := hashPassword("password")
	require.Nil(t, err, "hash")

	_, err = encryptData(strings.Repeat("x", minimumDataLength-1), key)
	assert.Equal(t, fault.CryptoFailed, err, "too short")

	_, err = encryptData(strings.Repeat("x", maximumDataLength), key)
	assert.Equal(t, fault.CryptoFailed, err, "too long")
}

func TestSaltText(t *testing.T) {
	salt, err := MakeSalt()
	require.Nil(t, err, "make salt")

	text, err := salt.MarshalText()
	require.Nil(t, err, "marshal")
	assert.Equal(t, 2*saltSize, len(text), "hex length")

	var decoded Salt
	require.Nil(t, decoded.UnmarshalText(text), "unmarshal")
	assert.Equal(t, *salt, decoded, "round trip")

	assert.Equal(t, fault.InvalidArguments, decoded.UnmarshalText(text[1:]), "short text")
}
