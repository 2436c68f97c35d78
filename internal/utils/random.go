package utils

import (
	"crypto/rand"
	"math/big"
)

const upperAlnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomUpperAlnumString generates a random string of uppercase letters
// and digits, used for human-facing reference numbers.
func RandomUpperAlnumString(length int) string {
	b := make([]byte, length)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(upperAlnum))))
		if err != nil {
			panic(err)
		}
		b[i] = upperAlnum[num.Int64()]
	}
	return string(b)
}
