package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// PasswordCharset is the alphabet used by GeneratePassword.
const PasswordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()_+"

// DefaultPasswordLength is used when GeneratePassword gets a non-positive length.
const DefaultPasswordLength = 8

// GeneratePassword returns a random archive password drawn uniformly from
// PasswordCharset.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		length = DefaultPasswordLength
	}

	charsetLen := big.NewInt(int64(len(PasswordCharset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", errors.Join(errors.New("error generating password"), err)
		}
		out[i] = PasswordCharset[n.Int64()]
	}
	return string(out), nil
}
