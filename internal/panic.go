// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal holds test helpers shared across packages.
package internal

import (
	"errors"
	"fmt"
)

var errNoPanic = errors.New("no panic")

func hasPanic(f func()) (has bool, err error) {
	err = nil
	var report interface{}
	func() {
		defer func() {
			if report = recover(); report != nil {
				has = true
			}
		}()

		f()
	}()

	if has {
		err = fmt.Errorf("%v", report)
	}

	return has, err
}

// ExpectPanic executes the function f with the expectation to recover from a panic.
// If no panic occurred, ExpectPanic returns (false, error).
func ExpectPanic(f func()) (bool, error) {
	has, err := hasPanic(f)
	if !has {
		return false, errNoPanic
	}
	return true, err
}

// ExpectNoPanic executes the function f and reports whether it completed
// without panicking; on panic the recovered message is returned as the error.
func ExpectNoPanic(f func()) (bool, error) {
	has, err := hasPanic(f)
	if has {
		return false, err
	}
	return true, nil
}
