// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package paillier_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iofinnet/paillier-keyproof/common"
	big "github.com/iofinnet/paillier-keyproof/common/int"
	. "github.com/iofinnet/paillier-keyproof/crypto/paillier"
	"github.com/stretchr/testify/assert"
)

const (
	testModulusBitLen = 2048
	testTimeout       = 10 * time.Minute
)

// two 1024-bit primes; using a fixed key keeps the tests deterministic and fast
const (
	testPStr = "148677972634832330983979593310074301486537017973460461278300587514468301043894574906886127642530475786889672304776052879927627556769456140664043088700743909632312483413393134504352834240399191134336344285483935856491230340093391784574980688823380828143810804684752914935441384845195613674104960646037368551517"
	testQStr = "158741574437007245654463598139927898730476924736461654463975966787719309357536545869203069369466212089132653564188443272208127277664424448947476335413293018778018615899291704693105620242763173357203898195318179150836424196645745308205164116144020613415407736216097185962171301808761138424668335445923774195463"
)

func testKey(t *testing.T) *PrivateKey {
	p, ok := big.SetString(testPStr, 10)
	assert.True(t, ok)
	q, ok := big.SetString(testQStr, 10)
	assert.True(t, ok)
	assert.True(t, p.ProbablyPrime(16))
	assert.True(t, q.ProbablyPrime(16))
	return NewPrivateKeyFromPrimes(p, q)
}

func TestGenerateKeyPair(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping key generation in short mode")
	}
	privateKey, publicKey, err := GenerateKeyPair(testModulusBitLen, testTimeout)
	assert.NoError(t, err)
	assert.NotNil(t, privateKey)
	assert.NotNil(t, publicKey)
	assert.GreaterOrEqual(t, publicKey.N.BitLen(), testModulusBitLen-1)
	assert.NotZero(t, publicKey.N.Bit(0), "the modulus must be odd")
}

func TestNewPrivateKeyFromPrimes(t *testing.T) {
	privateKey := testKey(t)
	assert.Equal(t, 2048, privateKey.N.BitLen())
	// lambdaN divides phiN
	rem := new(big.Int).Mod(privateKey.PhiN, privateKey.LambdaN)
	assert.Zero(t, rem.Sign())
}

func TestEncryptDecrypt(t *testing.T) {
	privateKey := testKey(t)
	m := common.GetRandomPositiveInt(privateKey.N)
	c, err := privateKey.Encrypt(m)
	assert.NoError(t, err)
	m2, err := privateKey.Decrypt(c)
	assert.NoError(t, err)
	assert.Zero(t, m.Cmp(m2))
}

func TestEncryptRejectsOutOfRange(t *testing.T) {
	privateKey := testKey(t)
	_, err := privateKey.Encrypt(privateKey.N)
	assert.Equal(t, ErrMessageTooLong, err)
}

func TestHomoAdd(t *testing.T) {
	privateKey := testKey(t)
	m1, m2 := big.NewInt(30), big.NewInt(25)
	c1, err := privateKey.Encrypt(m1)
	assert.NoError(t, err)
	c2, err := privateKey.Encrypt(m2)
	assert.NoError(t, err)
	cSum, err := privateKey.HomoAdd(c1, c2)
	assert.NoError(t, err)
	sum, err := privateKey.Decrypt(cSum)
	assert.NoError(t, err)
	assert.Zero(t, sum.Cmp(big.NewInt(55)))
}

func TestHomoMult(t *testing.T) {
	privateKey := testKey(t)
	m, k := big.NewInt(6), big.NewInt(7)
	c, err := privateKey.Encrypt(m)
	assert.NoError(t, err)
	cMul, err := privateKey.HomoMult(k, c)
	assert.NoError(t, err)
	product, err := privateKey.Decrypt(cMul)
	assert.NoError(t, err)
	assert.Zero(t, product.Cmp(big.NewInt(42)))
}

func TestExtractNthRoot(t *testing.T) {
	privateKey := testKey(t)
	x := common.GetRandomPositiveRelativelyPrimeInt(privateKey.N)
	root := privateKey.ExtractNthRoot(x)
	assert.NotNil(t, root)
	// root^N mod N must reproduce x
	derived := new(big.Int).Exp(root, privateKey.N, privateKey.N)
	assert.Zero(t, derived.Cmp(x))
	assert.Nil(t, privateKey.ExtractNthRoot(nil))
}

func TestPublicModulus(t *testing.T) {
	privateKey := testKey(t)
	assert.Zero(t, privateKey.PublicModulus().Cmp(privateKey.N))
}

func TestMarshalJSON(t *testing.T) {
	privateKey := testKey(t)

	data, err := json.Marshal(privateKey)
	assert.NoError(t, err)
	back := new(PrivateKey)
	assert.NoError(t, json.Unmarshal(data, back))
	assert.Zero(t, privateKey.N.Cmp(back.N))
	assert.Zero(t, privateKey.LambdaN.Cmp(back.LambdaN))
	assert.Zero(t, privateKey.PhiN.Cmp(back.PhiN))

	data, err = json.Marshal(&privateKey.PublicKey)
	assert.NoError(t, err)
	backPK := new(PublicKey)
	assert.NoError(t, json.Unmarshal(data, backPK))
	assert.Zero(t, privateKey.N.Cmp(backPK.N))
}

func TestClone(t *testing.T) {
	privateKey := testKey(t)
	cloned := privateKey.Clone()
	assert.Zero(t, privateKey.N.Cmp(cloned.N))
	assert.Zero(t, privateKey.PhiN.Cmp(cloned.PhiN))
	assert.Zero(t, privateKey.LambdaN.Cmp(cloned.LambdaN))
	assert.Nil(t, (*PrivateKey)(nil).Clone())
}
