// Copyright © 2021 Io FinNet Group, Inc.

// Package zkpcorrectkey implements a non-interactive zero-knowledge proof
// that a Paillier modulus N was generated correctly: N has no small prime
// factors and the prover knows its factorisation.
//
// This protocol is based on the NIZK protocol in https://eprint.iacr.org/2018/057.pdf
// for parameters e = N, m2 = 11, alpha = 6379 see https://eprint.iacr.org/2018/987.pdf
// for full details.
package zkpcorrectkey

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/iofinnet/paillier-keyproof/common"
	"github.com/iofinnet/paillier-keyproof/common/hash"
	big "github.com/iofinnet/paillier-keyproof/common/int"
	"github.com/iofinnet/paillier-keyproof/crypto/paillier"
)

const (
	// Iterations is the number of challenge-response pairs in a proof (m2).
	// Changing it breaks interoperability with every other implementation.
	Iterations = 11
	// DigestBits is the output size of the digest primitive.
	DigestBits = 256
	// MinModulusBitLen is the smallest modulus accepted by prover and verifier.
	// Below DigestBits the block count of the challenge derivation collapses to
	// zero and every challenge degenerates to a constant; the margin under 2048
	// admits moduli whose prime product came out a bit short.
	MinModulusBitLen = 2040
	// ProofCorrectKeyBytesParts is the number of byte parts in a serialised proof.
	ProofCorrectKeyBytesParts = Iterations + 1

	// Moduli divisible by a prime below this bound are rejected outright,
	// before the primorial GCD sieve runs.
	verifyPrimesUntil = 1000
)

var (
	// ErrProofRejected is the only error Verify returns. It deliberately
	// carries no detail about which check failed.
	ErrProofRejected = errors.New("correct-key proof rejected")

	// salt is the fixed domain-separation constant mixed into every digest input.
	salt = []byte{75, 90, 101, 110}

	saltInt = new(big.Int).SetBytes(salt)

	one = big.NewInt(1)
)

// smallPrimeProduct is the primorial of alpha = 6379: the product of all
// primes up to and including it. A modulus sharing a factor with it has a
// small prime factor and is rejected by the sieve check regardless of the
// witnesses.
var smallPrimeProduct *big.Int

func init() {
	var ok bool
	if smallPrimeProduct, ok = big.SetString(smallPrimeProductStr, 10); !ok {
		panic(errors.New("zkpcorrectkey: invalid small prime product constant"))
	}
}

// SmallPrimeProduct returns the primorial used by the small-factor sieve.
func SmallPrimeProduct() *big.Int {
	return smallPrimeProduct.Clone()
}

type (
	// ProofCorrectKey attests that its modulus N is a well-formed Paillier
	// modulus. Sigmas[i] is the N-th root of the i-th derived challenge; the
	// order is fixed by the challenge derivation and must never change.
	ProofCorrectKey struct {
		N      *big.Int
		Sigmas [Iterations]*big.Int
	}
)

// RootExtractor is the one capability the prover needs from the key holder:
// taking N-th roots modulo the public modulus N. It is feasible only with the
// factorisation of N, so it must never be reachable from a verifier.
type RootExtractor interface {
	PublicModulus() *big.Int
	ExtractNthRoot(x *big.Int) *big.Int
}

var _ RootExtractor = (*paillier.PrivateKey)(nil)

// GenerateChallenges derives the Iterations pseudorandom residues mod N which
// the prover must answer. It is a pure function of N and the protocol
// constants: prover and verifier run it independently and must produce
// bit-identical output. Per challenge index i, each of floor(bitlen(N)/256)
// digest blocks digest(N, i, j, salt) is placed at bit offset j*256 and the
// assembled integer is reduced mod N.
func GenerateChallenges(N *big.Int) ([Iterations]*big.Int, error) {
	var rhos [Iterations]*big.Int
	if N == nil || N.Sign() <= 0 {
		return rhos, errors.New("modulus must be a positive integer")
	}
	if N.BitLen() < MinModulusBitLen {
		return rhos, fmt.Errorf("modulus must be at least %d bits", MinModulusBitLen)
	}
	blocks := N.BitLen() / DigestBits
	g := new(errgroup.Group)
	for i := 0; i < Iterations; i++ {
		i := i
		g.Go(func() error {
			rho := big.NewInt(0)
			for j := 0; j < blocks; j++ {
				dj := hash.SHA256i(N, big.NewInt(uint64(i)), big.NewInt(uint64(j)), saltInt)
				if dj == nil { // this should never happen. see: https://golang.org/pkg/hash/#Hash
					return errors.New("challenge digest write error")
				}
				rho = new(big.Int).Add(rho, new(big.Int).Lsh(dj, uint(j*DigestBits)))
			}
			rhos[i] = new(big.Int).Mod(rho, N)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rhos, err
	}
	return rhos, nil
}

// NewProof proves that the modulus of `key` was generated correctly. Every
// derived challenge is answered with its N-th root mod N; the root
// extractions are mutually independent and fan out in parallel.
func NewProof(key RootExtractor) (*ProofCorrectKey, error) {
	if key == nil {
		return nil, errors.New("nil key")
	}
	N := key.PublicModulus()
	challenges, err := GenerateChallenges(N)
	if err != nil {
		return nil, err
	}
	pf := &ProofCorrectKey{N: N.Clone()}
	g := new(errgroup.Group)
	for i := range challenges {
		i := i
		g.Go(func() error {
			sigma := key.ExtractNthRoot(challenges[i])
			if sigma == nil {
				return errors.New("root extraction failed: not a valid paillier key")
			}
			pf.Sigmas[i] = sigma
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pf, nil
}

// Verify checks the proof using only public information. It re-derives the
// challenges from pf.N, requires every witness raised to the N-th power mod N
// to reproduce its challenge, and requires gcd(smallPrimeProduct, N) == 1.
// The exponent of the witness check is the modulus itself; that coupling is
// part of the protocol and must not be replaced with a fixed public exponent.
//
// Malformed input yields ErrProofRejected, never a panic. All Iterations
// checks run to completion regardless of earlier mismatches.
func (pf *ProofCorrectKey) Verify() error {
	if pf == nil || !pf.ValidateBasic() {
		return ErrProofRejected
	}
	if common.HasSmallFactor(pf.N, verifyPrimesUntil) {
		return ErrProofRejected
	}
	challenges, err := GenerateChallenges(pf.N)
	if err != nil {
		return ErrProofRejected
	}
	gcd := new(big.Int).GCD(nil, nil, smallPrimeProduct, pf.N)
	sieveOK := gcd.Cmp(one) == 0

	var oks [Iterations]bool
	g := new(errgroup.Group)
	for i := 0; i < Iterations; i++ {
		i := i
		g.Go(func() error {
			derived := new(big.Int).Exp(pf.Sigmas[i], pf.N, pf.N)
			oks[i] = derived.Cmp(challenges[i]) == 0
			return nil
		})
	}
	_ = g.Wait()

	ok := sieveOK
	for i := range oks {
		ok = ok && oks[i]
	}
	if !ok {
		return ErrProofRejected
	}
	return nil
}

// ValidateBasic rejects structurally malformed proofs: nil members, a
// non-positive or even modulus, or witnesses outside [0, N).
func (pf *ProofCorrectKey) ValidateBasic() bool {
	if pf.N == nil || pf.N.Sign() <= 0 || pf.N.Bit(0) == 0 {
		return false
	}
	for i := range pf.Sigmas {
		if pf.Sigmas[i] == nil || pf.Sigmas[i].Sign() < 0 || pf.Sigmas[i].Cmp(pf.N) >= 0 {
			return false
		}
	}
	return true
}

func (pf *ProofCorrectKey) Bytes() [ProofCorrectKeyBytesParts][]byte {
	bzs := [ProofCorrectKeyBytesParts][]byte{}
	bzs[0] = pf.N.Bytes()
	for i := range pf.Sigmas {
		bzs[1+i] = pf.Sigmas[i].Bytes()
	}
	return bzs
}

func NewProofFromBytes(bzs [][]byte) (*ProofCorrectKey, error) {
	if !common.AnyNonEmptyMultiByte(bzs, ProofCorrectKeyBytesParts) {
		return nil, fmt.Errorf("expected %d byte parts to construct ProofCorrectKey", ProofCorrectKeyBytesParts)
	}
	pf := &ProofCorrectKey{N: new(big.Int).SetBytes(bzs[0])}
	for i := range pf.Sigmas {
		pf.Sigmas[i] = new(big.Int).SetBytes(bzs[1+i])
	}
	return pf, nil
}

func (pf *ProofCorrectKey) String() string {
	if pf == nil || pf.N == nil {
		return "<nil>"
	}
	for _, sigma := range pf.Sigmas[:] {
		if sigma == nil {
			return "<*nil*>"
		}
	}
	return common.FormatBigInt(hash.SHA256i(append([]*big.Int{pf.N}, pf.Sigmas[:]...)...))
}
