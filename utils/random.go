package utils

import (
	"crypto/rand"
	"math/big"
)

const randomCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSecureRandomString verilen uzunlukta URL güvenli rastgele bir string üretir.
// Link anahtarları için kullanılır; benzersizlik garantisi yoktur,
// çağıran katman veritabanında çakışma kontrolü yapar.
func GenerateSecureRandomString(length int) (string, error) {
	result := make([]byte, length)
	max := big.NewInt(int64(len(randomCharset)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = randomCharset[n.Int64()]
	}
	return string(result), nil
}
