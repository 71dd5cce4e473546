// Copyright © 2021 Io FinNet Group, Inc.

package common

import (
	big "github.com/iofinnet/paillier-keyproof/common/int"

	"github.com/otiai10/primes"
)

// GetPrimesUpTo returns all primes up to and including limit, in ascending order.
func GetPrimesUpTo(limit int64) []int64 {
	if limit < 2 {
		return nil
	}
	return primes.Until(limit).List()
}

// PrimorialUpTo returns the product of all primes up to and including limit.
func PrimorialUpTo(limit int64) *big.Int {
	acc := big.NewInt(1)
	for _, p := range GetPrimesUpTo(limit) {
		acc = new(big.Int).Mul(acc, big.NewInt(uint64(p)))
	}
	return acc
}

// HasSmallFactor reports whether n is divisible by a prime up to and including limit.
// n must be larger than limit for the result to be meaningful.
func HasSmallFactor(n *big.Int, limit int64) bool {
	if n == nil || n.Sign() <= 0 {
		return true
	}
	for _, p := range GetPrimesUpTo(limit) {
		pi := big.NewInt(uint64(p))
		if new(big.Int).Mod(n, pi).Sign() == 0 {
			return true
		}
	}
	return false
}
