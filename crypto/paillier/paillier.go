// Copyright © 2021 Io FinNet Group, Inc.
// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// The Paillier Crypto-system is an additive crypto-system. This means that given two ciphertexts, one can perform operations equivalent to adding the respective plain texts.
// Additionally, Paillier Crypto-system supports further computations:
//
// * Encrypted integers can be added together
// * Encrypted integers can be multiplied by an unencrypted integer
// * Encrypted integers and unencrypted integers can be added together
//
// The private key additionally exposes the N-th root extraction capability
// used by the correct-key proof in crypto/zkp/correctkey.

package paillier

import (
	"context"
	"crypto/rand"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/iofinnet/paillier-keyproof/common"
	big "github.com/iofinnet/paillier-keyproof/common/int"
	int2 "github.com/iofinnet/paillier-keyproof/common/int"
)

const (
	// check that p-q is also very large in order to avoid square-root attacks
	pQBitLenDifference = 3 // >1020-bit P-Q for a 2048-bit modulus
)

type (
	PublicKey struct {
		N *big.Int
	}

	PrivateKey struct {
		PublicKey
		LambdaN, // lcm(p-1, q-1)
		PhiN *big.Int // (p-1) * (q-1)
	}
)

var (
	ErrMessageTooLong   = fmt.Errorf("the message is too large or < 0")
	ErrMessageMalFormed = fmt.Errorf("the message is mal-formed")

	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// GenerateKeyPair generates a Paillier key pair with a modulus of the given
// bit length. The two primes are searched for concurrently; the first pair
// whose difference is also large (to resist square-root attacks) wins.
func GenerateKeyPair(modulusBitLen int, timeout time.Duration, optionalConcurrency ...int) (privateKey *PrivateKey, publicKey *PublicKey, err error) {
	privateKey, publicKey, _, _, err = GenerateKeyPairAndPQ(modulusBitLen, timeout, optionalConcurrency...)
	return
}

// GenerateKeyPairAndPQ is as GenerateKeyPair and additionally returns the two primes.
func GenerateKeyPairAndPQ(modulusBitLen int, timeout time.Duration, optionalConcurrency ...int) (privateKey *PrivateKey, publicKey *PublicKey, p, q *big.Int, err error) {
	var concurrency int
	if 0 < len(optionalConcurrency) {
		if 1 < len(optionalConcurrency) {
			panic(errors.New("GenerateKeyPairAndPQ: expected 0 or 1 item in `optionalConcurrency`"))
		}
		concurrency = optionalConcurrency[0]
	} else {
		concurrency = runtime.GOMAXPROCS(0)
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if modulusBitLen < 16 {
		return nil, nil, nil, nil, errors.New("GenerateKeyPairAndPQ: modulusBitLen is too small")
	}

	primeBitLen := modulusBitLen / 2
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	primeCh := make(chan *big.Int, concurrency)
	errCh := make(chan error, concurrency)
	wg := new(sync.WaitGroup)
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				prime, pErr := rand.Prime(rand.Reader, primeBitLen)
				if pErr != nil {
					select {
					case errCh <- errors.Wrap(pErr, "prime candidate generation failed"):
					default:
					}
					return
				}
				select {
				case primeCh <- int2.Wrap(prime):
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	for p == nil || q == nil {
		select {
		case prime := <-primeCh:
			if p == nil {
				p = prime
				continue
			}
			delta := new(big.Int).Sub(p, prime)
			if delta.Sign() != 0 && delta.BitLen() >= primeBitLen-pQBitLenDifference {
				q = prime
			}
		case <-ctx.Done():
			merr := multierror.Append(
				errors.New("GenerateKeyPairAndPQ: timed out before a suitable prime pair was found"), ctx.Err())
			wg.Wait()
			close(errCh)
			for wErr := range errCh {
				merr = multierror.Append(merr, wErr)
			}
			return nil, nil, nil, nil, merr
		}
	}
	cancel()

	privateKey = NewPrivateKeyFromPrimes(p, q)
	publicKey = &privateKey.PublicKey
	common.Logger.Debugf("GenerateKeyPairAndPQ: generated a modulus of %d bits", privateKey.N.BitLen())
	return
}

// NewPrivateKeyFromPrimes assembles a private key from the two prime factors of N.
func NewPrivateKeyFromPrimes(p, q *big.Int) *PrivateKey {
	N := new(big.Int).Mul(p, q)

	// phiN = P-1 * Q-1
	PMinus1, QMinus1 := new(big.Int).Sub(p, one), new(big.Int).Sub(q, one)
	phiN := new(big.Int).Mul(PMinus1, QMinus1)

	// lambdaN = lcm(P−1, Q−1)
	gcd := new(big.Int).GCD(nil, nil, PMinus1, QMinus1)
	lambdaN := new(big.Int).Div(phiN, gcd)

	return &PrivateKey{PublicKey: PublicKey{N: N}, LambdaN: lambdaN, PhiN: phiN}
}

// ----- //

func (publicKey *PublicKey) EncryptAndReturnRandomness(m *big.Int) (c *big.Int, x *big.Int, err error) {
	if m.Cmp(zero) == -1 || m.Cmp(publicKey.N) != -1 { // m < 0 || m >= N ?
		return nil, nil, ErrMessageTooLong
	}
	x = common.GetRandomPositiveRelativelyPrimeInt(publicKey.N)
	N2 := publicKey.NSquare()
	// 1. gamma^m mod N2
	Gm := new(big.Int).Exp(publicKey.Gamma(), m, N2)
	// 2. x^N mod N2
	xN := new(big.Int).Exp(x, publicKey.N, N2)
	// 3. (1) * (2) mod N2
	c = int2.ModInt(N2).Mul(Gm, xN)
	return
}

func (publicKey *PublicKey) Encrypt(m *big.Int) (c *big.Int, err error) {
	c, _, err = publicKey.EncryptAndReturnRandomness(m)
	return
}

func (publicKey *PublicKey) HomoMult(m, c1 *big.Int) (*big.Int, error) {
	if m.Cmp(zero) == -1 || m.Cmp(publicKey.N) != -1 { // m < 0 || m >= N ?
		return nil, ErrMessageTooLong
	}
	N2 := publicKey.NSquare()
	if c1.Cmp(zero) == -1 || c1.Cmp(N2) != -1 { // c1 < 0 || c1 >= N2 ?
		return nil, ErrMessageTooLong
	}
	// cipher^m mod N2
	return int2.ModInt(N2).Exp(c1, m), nil
}

func (publicKey *PublicKey) HomoAdd(c1, c2 *big.Int) (*big.Int, error) {
	N2 := publicKey.NSquare()
	if c1.Cmp(zero) == -1 || c1.Cmp(N2) != -1 { // c1 < 0 || c1 >= N2 ?
		return nil, ErrMessageTooLong
	}
	if c2.Cmp(zero) == -1 || c2.Cmp(N2) != -1 { // c2 < 0 || c2 >= N2 ?
		return nil, ErrMessageTooLong
	}
	// c1 * c2 mod N2
	return int2.ModInt(N2).Mul(c1, c2), nil
}

func (publicKey *PublicKey) NSquare() *big.Int {
	return new(big.Int).Mul(publicKey.N, publicKey.N)
}

// Gamma returns N+1
func (publicKey *PublicKey) Gamma() *big.Int {
	return new(big.Int).Add(publicKey.N, one)
}

// AsInts returns the PublicKey serialised to a slice of *big.Int for hashing
func (publicKey *PublicKey) AsInts() []*big.Int {
	return []*big.Int{publicKey.N, publicKey.Gamma()}
}

// ----- //

func (privateKey *PrivateKey) Decrypt(c *big.Int) (m *big.Int, err error) {
	N2 := privateKey.NSquare()
	if c.Cmp(zero) == -1 || c.Cmp(N2) != -1 { // c < 0 || c >= N2 ?
		return nil, ErrMessageTooLong
	}
	cg := new(big.Int).GCD(nil, nil, c, N2)
	if cg.Cmp(one) == 1 {
		return nil, ErrMessageMalFormed
	}
	// 1. L(u) = (c^LambdaN-1 mod N2) / N
	Lc := L(new(big.Int).Exp(c, privateKey.LambdaN, N2), privateKey.N)
	// 2. L(u) = (Gamma^LambdaN-1 mod N2) / N
	Lg := L(new(big.Int).Exp(privateKey.Gamma(), privateKey.LambdaN, N2), privateKey.N)
	// 3. (1) * modInv(2) mod N
	inv := new(big.Int).ModInverse(Lg, privateKey.N)
	m = int2.ModInt(privateKey.N).Mul(Lc, inv)
	return
}

// PublicModulus returns the public modulus N of the key.
func (privateKey *PrivateKey) PublicModulus() *big.Int {
	return privateKey.N
}

// ExtractNthRoot returns a y such that y^N = x (mod N).
// Computing it requires the factorisation of N: the exponent is N^-1 mod phi(N),
// which does not exist for a party that only knows N.
// Returns nil when gcd(N, phi(N)) != 1, which cannot happen for a well-formed key.
func (privateKey *PrivateKey) ExtractNthRoot(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	M := new(big.Int).ModInverse(privateKey.N, privateKey.PhiN)
	if M == nil {
		return nil
	}
	return new(big.Int).Exp(x, M, privateKey.N)
}

// ----- utils

func L(u, N *big.Int) *big.Int {
	t := new(big.Int).Sub(u, one)
	return new(big.Int).Div(t, N)
}

// Clone creates a deep copy of the PublicKey
func (publicKey *PublicKey) Clone() *PublicKey {
	if publicKey == nil {
		return nil
	}
	newPK := &PublicKey{}
	if publicKey.N != nil {
		newPK.N = publicKey.N.Clone()
	}
	return newPK
}

// Clone creates a deep copy of the PrivateKey
func (privateKey *PrivateKey) Clone() *PrivateKey {
	if privateKey == nil {
		return nil
	}
	newSK := &PrivateKey{}
	newSK.PublicKey = *privateKey.PublicKey.Clone()
	if privateKey.LambdaN != nil {
		newSK.LambdaN = privateKey.LambdaN.Clone()
	}
	if privateKey.PhiN != nil {
		newSK.PhiN = privateKey.PhiN.Clone()
	}
	return newSK
}
