// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package hash

import (
	"crypto"
	_ "crypto/sha256"
	"encoding/binary"

	"github.com/iofinnet/paillier-keyproof/common"
	big "github.com/iofinnet/paillier-keyproof/common/int"
)

const (
	hashInputDelimiter = byte('$')
)

// SHA256 hashes the given byte buffers with framing that prevents collisions
// between adjacent inputs: a 64-bit count prefix, and a delimiter plus 64-bit
// length suffix after every buffer.
func SHA256(in ...[]byte) []byte {
	var data []byte
	state := crypto.SHA256.New()
	inLen := len(in)
	if inLen == 0 {
		return nil
	}
	bzSize := 0
	inLenBz := make([]byte, 8)
	binary.LittleEndian.PutUint64(inLenBz, uint64(inLen))
	for _, bz := range in {
		bzSize += len(bz)
	}
	dataCap := len(inLenBz) + bzSize + inLen + (inLen * 8)
	data = make([]byte, 0, dataCap)
	data = append(data, inLenBz...)
	for _, bz := range in {
		data = append(data, bz...)
		data = append(data, hashInputDelimiter)
		dataLen := make([]byte, 8)
		binary.LittleEndian.PutUint64(dataLen, uint64(len(bz)))
		data = append(data, dataLen...)
	}
	// n < len(data) or an error will never happen.
	// see: https://golang.org/pkg/hash/#Hash
	if _, err := state.Write(data); err != nil {
		common.Logger.Errorf("SHA256 Write() failed: %v", err)
		return nil
	}
	return state.Sum(nil)
}

// SHA256i hashes an ordered sequence of big integers with the same framing as
// SHA256. Each integer is encoded as its absolute big-endian bytes followed by
// a sign byte. This is the digest primitive of the correct-key protocol: both
// sides must use it bit-for-bit identically.
func SHA256i(in ...*big.Int) *big.Int {
	var data []byte
	state := crypto.SHA256.New()
	inLen := len(in)
	if inLen == 0 {
		return nil
	}
	bzSize := 0
	inLenBz := make([]byte, 8)
	binary.LittleEndian.PutUint64(inLenBz, uint64(inLen))
	ptrs := make([][]byte, inLen)
	for i, n := range in {
		ptrs[i] = append(n.Bytes(), byte(n.Sign()))
		bzSize += len(ptrs[i])
	}
	dataCap := len(inLenBz) + bzSize + inLen + (inLen * 8)
	data = make([]byte, 0, dataCap)
	data = append(data, inLenBz...)
	for i := range in {
		data = append(data, ptrs[i]...)
		data = append(data, hashInputDelimiter)
		dataLen := make([]byte, 8)
		binary.LittleEndian.PutUint64(dataLen, uint64(len(ptrs[i])))
		data = append(data, dataLen...)
	}
	if _, err := state.Write(data); err != nil {
		common.Logger.Errorf("SHA256i Write() failed: %v", err)
		return nil
	}
	return new(big.Int).SetBytes(state.Sum(nil))
}

// SHA256iOne hashes a single big integer without framing.
func SHA256iOne(in *big.Int) *big.Int {
	var data []byte
	state := crypto.SHA256.New()
	if in == nil {
		return nil
	}
	data = append(in.Bytes(), byte(in.Sign()))
	if _, err := state.Write(data); err != nil {
		common.Logger.Errorf("SHA256iOne Write() failed: %v", err)
		return nil
	}
	return new(big.Int).SetBytes(state.Sum(nil))
}
