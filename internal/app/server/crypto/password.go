package crypto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matthewhartstonge/argon2"
	"golang.org/x/crypto/bcrypt"
)

var ErrUnknownDigest = errors.New("unknown password digest format")

const argon2idPrefix = "$argon2id$"

// Params задаёт стоимость argon2id.
type Params struct {
	Time     uint32
	MemoryKB uint32
	Threads  uint8
}

// PasswordHasher хэширует пароли argon2id (соль случайная на каждый вызов
// и хранится внутри строки-дайджеста). Дайджесты bcrypt, оставшиеся от
// старых установок, проверяются, но считаются требующими перехэширования.
type PasswordHasher struct {
	argon argon2.Config
}

func NewPasswordHasher(p Params) *PasswordHasher {
	cfg := argon2.DefaultConfig()
	if p.Time > 0 {
		cfg.TimeCost = p.Time
	}
	if p.MemoryKB > 0 {
		cfg.MemoryCost = p.MemoryKB
	}
	if p.Threads > 0 {
		cfg.Parallelism = p.Threads
	}

	return &PasswordHasher{argon: cfg}
}

func (h *PasswordHasher) Hash(plain string) (string, error) {
	encoded, err := h.argon.HashEncoded([]byte(plain))
	if err != nil {
		return "", fmt.Errorf("argon2 hash: %w", err)
	}
	return string(encoded), nil
}

// Verify returns false on mismatch. An error means the stored digest itself
// is broken.
func (h *PasswordHasher) Verify(digest, plain string) (bool, error) {
	switch {
	case strings.HasPrefix(digest, argon2idPrefix):
		ok, err := argon2.VerifyEncoded([]byte(plain), []byte(digest))
		if err != nil {
			return false, fmt.Errorf("argon2 verify: %w", err)
		}
		return ok, nil
	case isBcrypt(digest):
		err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("bcrypt verify: %w", err)
		}
		return true, nil
	default:
		return false, ErrUnknownDigest
	}
}

func (h *PasswordHasher) NeedsRehash(digest string) bool {
	return !strings.HasPrefix(digest, argon2idPrefix)
}

func isBcrypt(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}
