package betting

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Validation failures. These reject a command before anything is applied.
var (
	ErrMarketNotFound      = errors.New("betting market not found")
	ErrMarketExists        = errors.New("betting market already exists")
	ErrBetNotFound         = errors.New("bet not found")
	ErrBetExists           = errors.New("bet already exists")
	ErrNotBetOwner         = errors.New("bet belongs to another bettor")
	ErrInvalidStake        = errors.New("stake must be positive")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidSide         = errors.New("invalid bet type")
	ErrInvalidMultiplier   = errors.New("multiplier out of range")
	ErrInvalidResolution   = errors.New("invalid resolution")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// assert aborts the enclosing operation. The panic is recovered by
// Engine.apply, which rolls back and returns the assertion error.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}

func addInt64(a, b int64) int64 {
	s := a + b
	assert((b >= 0 && s >= a) || (b < 0 && s < a), "int64 overflow: %d + %d", a, b)
	return s
}

func subInt64(a, b int64) int64 {
	assert(b != math.MinInt64, "int64 overflow: %d - %d", a, b)
	return addInt64(a, -b)
}
