package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of password. The digest is
// unsalted so that logins can match on equality in SQL.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
