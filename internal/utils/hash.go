package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns the digest hex-encoded. The auth service stores the result as the
// account's credential hash, so registration and login must use the same key.
//
// Example usage:
//
//	authHash := utils.HashString(password, cfg.App.PasswordHashKey)
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
