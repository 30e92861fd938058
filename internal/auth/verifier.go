// Package auth provides the credential verification capability for login.
package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/smallbiznis/quickinvoice/internal/auth/password"
	"github.com/smallbiznis/quickinvoice/internal/config"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

// Verifier checks a credential pair. The single-pair static implementation is
// a placeholder; real authentication plugs in here without touching the
// HTTP handlers.
type Verifier interface {
	Verify(username, password string) bool
}

// StaticVerifier accepts exactly one username with either a plaintext secret
// or an Argon2id-encoded one. All rejections look the same to the caller.
type StaticVerifier struct {
	username    string
	plaintext   string
	encodedHash string
}

func NewStaticVerifier(cfg config.Config) *StaticVerifier {
	return &StaticVerifier{
		username:    cfg.AuthUsername,
		plaintext:   cfg.AuthPassword,
		encodedHash: cfg.AuthPasswordHash,
	}
}

func (v *StaticVerifier) Verify(username, secret string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1

	var secretOK bool
	if v.encodedHash != "" {
		secretOK = password.Verify(secret, v.encodedHash)
	} else {
		secretOK = subtle.ConstantTimeCompare([]byte(secret), []byte(v.plaintext)) == 1
	}

	return userOK && secretOK
}
