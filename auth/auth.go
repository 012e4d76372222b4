// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid session token")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// VerifyAdmin checks the submitted credentials against the configured
// admin email and bcrypt password hash. Email and password mismatches are
// indistinguishable to the caller.
func VerifyAdmin(email, password, cfgEmail, cfgPasswordHash string) error {
	if !hmac.Equal([]byte(email), []byte(cfgEmail)) {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cfgPasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateSessionToken creates a bearer token of the form "nonce.sig"
// where sig is an HMAC over the nonce. Tokens are stateless: any process
// holding the same salt can validate them without a session store.
func GenerateSessionToken(salt string) (string, error) {
	nonce, err := GenerateID(16)
	if err != nil {
		return "", err
	}
	return nonce + "." + signNonce(nonce, salt), nil
}

// ValidateSessionToken checks the token's HMAC signature
func ValidateSessionToken(token, salt string) error {
	nonce, sig, ok := strings.Cut(token, ".")
	if !ok || nonce == "" || sig == "" {
		return ErrInvalidToken
	}
	expected := signNonce(nonce, salt)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return ErrInvalidToken
	}
	return nil
}

func signNonce(nonce, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(nonce))
	sum := h.Sum(nil)
	// URL-safe base64 without padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// HashPassword produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
// Used by operators when provisioning credentials and by tests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
