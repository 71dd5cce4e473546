// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	big "github.com/iofinnet/paillier-keyproof/common/int"
)

func ByteSlicesToBigInts(bzs [][]byte) []*big.Int {
	ints := make([]*big.Int, len(bzs))
	for i := range bzs {
		ints[i] = new(big.Int).SetBytes(bzs[i])
	}
	return ints
}

func NonEmptyBytes(bz []byte, expectedLen ...int) bool {
	if len(bz) == 0 {
		return false
	}
	if 0 < len(expectedLen) && expectedLen[0] != len(bz) {
		return false
	}
	return true
}

// AnyNonEmptyMultiByte checks that the slice has the expected number of parts
// and that at least one part is non-empty.
func AnyNonEmptyMultiByte(bzs [][]byte, expectedLen ...int) bool {
	if len(bzs) == 0 {
		return false
	}
	if 0 < len(expectedLen) && expectedLen[0] != len(bzs) {
		return false
	}
	for _, bz := range bzs {
		if NonEmptyBytes(bz) {
			return true
		}
	}
	return false
}
