// Copyright © 2021 Io FinNet Group, Inc.

package zkpcorrectkey

import (
	"encoding"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	big "github.com/iofinnet/paillier-keyproof/common/int"
)

var (
	_ encoding.BinaryMarshaler   = (*ProofCorrectKey)(nil)
	_ encoding.BinaryUnmarshaler = (*ProofCorrectKey)(nil)
)

// cborProofCorrectKey is the wire form of a proof. The witness order is
// semantically meaningful and is preserved exactly.
type cborProofCorrectKey struct {
	N      []byte   `cbor:"n"`
	Sigmas [][]byte `cbor:"sigmas"`
}

func (pf *ProofCorrectKey) MarshalBinary() ([]byte, error) {
	if pf == nil || !pf.ValidateBasic() {
		return nil, errors.New("refusing to marshal a malformed ProofCorrectKey")
	}
	wire := cborProofCorrectKey{
		N:      pf.N.Bytes(),
		Sigmas: make([][]byte, Iterations),
	}
	for i := range pf.Sigmas {
		wire.Sigmas[i] = pf.Sigmas[i].Bytes()
	}
	return cbor.Marshal(wire)
}

func (pf *ProofCorrectKey) UnmarshalBinary(data []byte) error {
	var wire cborProofCorrectKey
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return err
	}
	if len(wire.Sigmas) != Iterations {
		return fmt.Errorf("expected %d sigmas in a serialised ProofCorrectKey", Iterations)
	}
	pf.N = new(big.Int).SetBytes(wire.N)
	for i := range wire.Sigmas {
		pf.Sigmas[i] = new(big.Int).SetBytes(wire.Sigmas[i])
	}
	return nil
}
