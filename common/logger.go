// Copyright © 2021 Io FinNet Group, Inc.

package common

import (
	"fmt"

	big "github.com/iofinnet/paillier-keyproof/common/int"

	"github.com/ipfs/go-log"
)

var Logger = log.Logger("paillier-keyproof")

func FormatBigInt(a *big.Int) string {
	if a == nil {
		return "<nil>"
	}
	var aux = new(big.Int).SetUint64(0xFFFFFFFF)
	return new(big.Int).And(a, aux).Text(16)
}

func BigIntsToString(array []*big.Int) string {
	r := ""
	for a, b := range array {
		r = fmt.Sprintf("%s %d:%s ", r, a, FormatBigInt(b))
	}
	return r
}
