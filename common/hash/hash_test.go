// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package hash_test

import (
	"testing"

	. "github.com/iofinnet/paillier-keyproof/common"
	. "github.com/iofinnet/paillier-keyproof/common/hash"
	big "github.com/iofinnet/paillier-keyproof/common/int"
	"github.com/stretchr/testify/assert"
)

func TestSHA256(t *testing.T) {
	input := [][]byte{[]byte("abc"), []byte("def"), []byte("ghi")}
	input2 := [][]byte{[]byte("abc"), []byte("def"), []byte("gh")}
	input3 := [][]byte{[]byte("abc"), []byte("defg"), []byte("hi")}
	type args struct {
		in [][]byte
	}
	tests := []struct {
		name     string
		args     args
		want     []byte
		wantDiff bool
		wantLen  int
	}{{
		name:    "same inputs produce the same hash",
		args:    args{input},
		want:    SHA256(input...),
		wantLen: 256 / 8,
	}, {
		name:     "different inputs produce a differing hash",
		args:     args{input2},
		want:     SHA256(input...),
		wantDiff: true,
		wantLen:  256 / 8,
	}, {
		name:     "moving a boundary between inputs produces a differing hash",
		args:     args{input3},
		want:     SHA256(input...),
		wantDiff: true,
		wantLen:  256 / 8,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SHA256(tt.args.in...)
			if tt.wantDiff {
				assert.NotEqualf(t, tt.want, got, "SHA256(%v)", tt.args.in)
			} else {
				assert.Equalf(t, tt.want, got, "SHA256(%v)", tt.args.in)
			}
			assert.Equal(t, tt.wantLen, len(got))
		})
	}
}

func TestSHA256i(t *testing.T) {
	input := ByteSlicesToBigInts([][]byte{[]byte("abc"), []byte("def"), []byte("ghi")})
	input2 := ByteSlicesToBigInts([][]byte{[]byte("abc"), []byte("def"), []byte("gh")})
	type args struct {
		in []*big.Int
	}
	tests := []struct {
		name     string
		args     args
		want     *big.Int
		wantDiff bool
	}{{
		name: "same inputs produce the same hash",
		args: args{input},
		want: SHA256i(input...),
	}, {
		name:     "different inputs produce a differing hash",
		args:     args{input2},
		want:     SHA256i(input...),
		wantDiff: true,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SHA256i(tt.args.in...)
			if tt.wantDiff {
				assert.NotZerof(t, tt.want.Cmp(got), "SHA256i(%v)", tt.args.in)
			} else {
				assert.Zerof(t, tt.want.Cmp(got), "SHA256i(%v)", tt.args.in)
			}
			assert.True(t, got.BitLen() <= 256)
		})
	}
}

func TestSHA256iNilAndEmpty(t *testing.T) {
	assert.Nil(t, SHA256i())
	assert.Nil(t, SHA256())
	assert.Nil(t, SHA256iOne(nil))
}

func TestSHA256iOne(t *testing.T) {
	a := new(big.Int).SetBytes([]byte("abc"))
	b := new(big.Int).SetBytes([]byte("abd"))
	assert.Zero(t, SHA256iOne(a).Cmp(SHA256iOne(a)))
	assert.NotZero(t, SHA256iOne(a).Cmp(SHA256iOne(b)))
}
