// Copyright © 2021 Io FinNet Group, Inc.

package int_test

import (
	"encoding/json"
	big2 "math/big"
	"testing"

	big "github.com/iofinnet/paillier-keyproof/common/int"
	"github.com/stretchr/testify/assert"
)

func TestWrapRoundTrip(t *testing.T) {
	bi := new(big2.Int).SetInt64(1234567890)
	w := big.Wrap(bi)
	assert.Zero(t, w.Big().Cmp(bi))
	assert.Equal(t, bi.Bytes(), w.Bytes())
}

func TestSetString(t *testing.T) {
	n, ok := big.SetString("987654321987654321987654321", 10)
	assert.True(t, ok)
	assert.Equal(t, "987654321987654321987654321", n.String())

	_, ok = big.SetString("not a number", 10)
	assert.False(t, ok)
}

func TestExpMod(t *testing.T) {
	base, exp, mod := big.NewInt(4), big.NewInt(13), big.NewInt(497)
	// 4^13 mod 497 = 445
	assert.Zero(t, new(big.Int).Exp(base, exp, mod).Cmp(big.NewInt(445)))
}

func TestGCD(t *testing.T) {
	a, b := big.NewInt(54), big.NewInt(24)
	assert.Zero(t, new(big.Int).GCD(nil, nil, a, b).Cmp(big.NewInt(6)))
}

func TestModInverseOfNonInvertible(t *testing.T) {
	assert.Nil(t, new(big.Int).ModInverse(big.NewInt(6), big.NewInt(9)))
}

func TestLshAdd(t *testing.T) {
	// 3 << 8 == 768; 768 + 1 == 769
	v := new(big.Int).Lsh(big.NewInt(3), 8)
	v = new(big.Int).Add(v, big.NewInt(1))
	assert.Zero(t, v.Cmp(big.NewInt(769)))
}

func TestModIntArithmetic(t *testing.T) {
	modN := big.ModInt(big.NewInt(7))
	assert.Zero(t, modN.Add(big.NewInt(5), big.NewInt(5)).Cmp(big.NewInt(3)))
	assert.Zero(t, modN.Mul(big.NewInt(5), big.NewInt(5)).Cmp(big.NewInt(4)))
	assert.Zero(t, modN.Exp(big.NewInt(3), big.NewInt(4)).Cmp(big.NewInt(4)))
}

func TestJSONRoundTrip(t *testing.T) {
	n, _ := big.SetString("123456789123456789123456789", 10)
	data, err := json.Marshal(n)
	assert.NoError(t, err)
	back := new(big.Int)
	assert.NoError(t, json.Unmarshal(data, back))
	assert.Zero(t, n.Cmp(back))
}
