// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - prefix a relative path with directory and clean it
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// ResolveAll - make every path absolute relative to directory
//
// when optional is set, blank entries are left blank
func ResolveAll(directory string, optional bool, paths ...*string) {
	for _, p := range paths {
		if optional && "" == *p {
			continue
		}
		*p = EnsureAbsolute(directory, *p)
	}
}

// IsPlainName - true if name has no directory component
func IsPlainName(name string) bool {
	switch filepath.Dir(name) {
	case "", ".":
		return true
	default:
		return false
	}
}

// FileExists - true only for an existing non-directory entry
func FileExists(name string) bool {
	info, err := os.Stat(name)
	if nil != err {
		return false
	}
	return !info.IsDir()
}
