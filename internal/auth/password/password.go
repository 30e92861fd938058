// Package password implements the Argon2id credential encoding used for the
// optional hashed login secret.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	argonSaltLen        = 16
)

// Hash returns an Argon2id hash in the standard encoded form.
func Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	saltB64 := base64.RawStdEncoding.EncodeToString(salt)
	hashB64 := base64.RawStdEncoding.EncodeToString(hash)
	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s", argonMemory, argonTime, argonThreads, saltB64, hashB64), nil
}

// Verify checks whether a password matches the encoded Argon2id hash.
func Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return false
	}

	memory, timeCost, threads, ok := parseParams(parts[3])
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	check := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, uint32(len(hash)))
	return subtle.ConstantTimeCompare(hash, check) == 1
}

func parseParams(raw string) (memory uint32, timeCost uint32, threads uint8, ok bool) {
	params := strings.Split(raw, ",")
	if len(params) != 3 {
		return 0, 0, 0, false
	}

	m, ok := strings.CutPrefix(params[0], "m=")
	if !ok {
		return 0, 0, 0, false
	}
	t, ok := strings.CutPrefix(params[1], "t=")
	if !ok {
		return 0, 0, 0, false
	}
	p, ok := strings.CutPrefix(params[2], "p=")
	if !ok {
		return 0, 0, 0, false
	}

	m64, err := strconv.ParseUint(m, 10, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	t64, err := strconv.ParseUint(t, 10, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	p64, err := strconv.ParseUint(p, 10, 8)
	if err != nil {
		return 0, 0, 0, false
	}

	return uint32(m64), uint32(t64), uint8(p64), true
}
