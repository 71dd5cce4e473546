// Copyright © 2021 Io FinNet Group, Inc.

package paillier

import (
	"encoding/json"

	big "github.com/iofinnet/paillier-keyproof/common/int"
)

var (
	_ json.Marshaler   = (*PublicKey)(nil)
	_ json.Unmarshaler = (*PublicKey)(nil)
	_ json.Marshaler   = (*PrivateKey)(nil)
	_ json.Unmarshaler = (*PrivateKey)(nil)
)

type jsonPublicKey struct {
	N *big.Int `json:"n"`
}

type jsonPrivateKey struct {
	N       *big.Int `json:"n"`
	LambdaN *big.Int `json:"lambdaN"`
	PhiN    *big.Int `json:"phiN"`
}

func (publicKey *PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPublicKey{N: publicKey.N})
}

func (publicKey *PublicKey) UnmarshalJSON(bz []byte) error {
	var x jsonPublicKey
	if err := json.Unmarshal(bz, &x); err != nil {
		return err
	}
	publicKey.N = x.N
	return nil
}

func (privateKey *PrivateKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPrivateKey{N: privateKey.N, LambdaN: privateKey.LambdaN, PhiN: privateKey.PhiN})
}

func (privateKey *PrivateKey) UnmarshalJSON(bz []byte) error {
	var x jsonPrivateKey
	if err := json.Unmarshal(bz, &x); err != nil {
		return err
	}
	privateKey.N = x.N
	privateKey.LambdaN = x.LambdaN
	privateKey.PhiN = x.PhiN
	return nil
}
