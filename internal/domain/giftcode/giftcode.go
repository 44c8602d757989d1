package giftcode

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("amount must be a positive integer")
	ErrEmptyCode     = errors.New("code is required")
)

const (
	// CodeLength gives 62^16 possible codes, large enough that a
	// collision on insert is a freak event handled by regeneration.
	CodeLength = 16

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// A GiftCode escrows a fixed amount of currency outside any balance.
// The row existing is the sole authorization to redeem it once.
type GiftCode struct {
	code   string
	amount int64
}

func New(amount int64) (*GiftCode, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}

	return &GiftCode{
		code:   code,
		amount: amount,
	}, nil
}

func (g *GiftCode) Code() string {
	return g.code
}

func (g *GiftCode) Amount() int64 {
	return g.amount
}

// Regenerate replaces the code token, keeping the amount. Used when an
// insert hits the (astronomically unlikely) duplicate key.
func (g *GiftCode) Regenerate() error {
	code, err := generateCode()
	if err != nil {
		return err
	}
	g.code = code
	return nil
}

func NormalizeCode(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyCode
	}
	return s, nil
}

func generateCode() (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, CodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}
