// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tokens generates and fingerprints the opaque secrets used for
// invitations, magic links and API keys. Only fingerprints are ever
// persisted.
package tokens

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
)

const tokenBytes = 32

// GenerateToken returns a fresh url-safe token and its fingerprint.
func GenerateToken() (token, fingerprint string, err error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}

	token = base64.RawURLEncoding.EncodeToString(raw)
	return token, Fingerprint(token), nil
}

// Fingerprint returns the hex SHA-256 digest of a token.
func Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// FingerprintEqual compares a candidate token against a stored
// fingerprint in constant time.
func FingerprintEqual(token, fingerprint string) bool {
	return subtle.ConstantTimeCompare([]byte(Fingerprint(token)), []byte(fingerprint)) == 1
}

// GenerateOTP returns a 6-digit one-time code, zero padded.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
