// Package auth provides password hashing and bearer-token handling.
//
// Passwords are stored as argon2id encoded hashes (salted, memory-hard), so
// the stored credential format is the standard $argon2id$... encoding.
package auth

import "github.com/matthewhartstonge/argon2"

// HashPassword derives an argon2id encoded hash from a plaintext password.
func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports whether password matches the encoded hash.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
