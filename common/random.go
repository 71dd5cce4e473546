// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"crypto/rand"
	"fmt"
	big2 "math/big"

	int2 "github.com/iofinnet/paillier-keyproof/common/int"
	"github.com/pkg/errors"
)

const (
	mustGetRandomIntMaxBits = 5000
)

var (
	zero = int2.NewInt(0)
	one  = int2.NewInt(1)
	two  = int2.NewInt(2)
)

// MustGetRandomInt panics if it is unable to gather entropy from `rand.Reader` or when `bits` is <= 0
func MustGetRandomInt(bits int) *int2.Int {
	if bits <= 0 || mustGetRandomIntMaxBits < bits {
		panic(fmt.Errorf("MustGetRandomInt: bits should be positive, non-zero and less than %d", mustGetRandomIntMaxBits))
	}
	// Max random value e.g. 2^256 - 1
	max := new(big2.Int)
	max = max.Exp(two.Big(), big2.NewInt(int64(bits)), nil).Sub(max, one.Big())

	// Generate cryptographically strong pseudo-random int between 0 - max
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(errors.Wrap(err, "rand.Int failure in MustGetRandomInt!"))
	}
	return int2.Wrap(n)
}

func GetRandomPositiveInt(upper *int2.Int) *int2.Int {
	if upper == nil || zero.Cmp(upper) != -1 {
		return nil
	}
	var try *int2.Int
	for {
		try = MustGetRandomInt(upper.BitLen())
		if try.Cmp(upper) < 0 && try.Cmp(zero) > 0 {
			break
		}
	}
	return try
}

func GetRandomPrimeInt(bits int) *int2.Int {
	if bits <= 0 {
		return nil
	}
	try, err := rand.Prime(rand.Reader, bits)
	if err != nil || try.Cmp(zero.Big()) == 0 {
		return nil
	}
	return int2.Wrap(try)
}

func GetRandomPositiveRelativelyPrimeInt(n *int2.Int) *int2.Int {
	if n == nil || zero.Cmp(n) != -1 {
		return nil
	}
	var try *int2.Int
	for {
		try = MustGetRandomInt(n.BitLen())
		if IsNumberInMultiplicativeGroup(n, try) {
			break
		}
	}
	return try
}

func IsNumberInMultiplicativeGroup(n, v *int2.Int) bool {
	if n == nil || v == nil || zero.Cmp(n) != -1 {
		return false
	}
	gcd := int2.NewInt(0)
	return v.Cmp(n) < 0 && v.Cmp(one) >= 0 &&
		gcd.GCD(nil, nil, v, n).Cmp(one) == 0
}
