package betting

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

type (
	BetID     uint64
	AccountID uint64
	MarketID  uint64
	AssetID   uint64
)

// Multiplier is a fixed-point decimal odds value scaled by OddsPrecision.
// Decimal odds of 2.5 are stored as 25000.
type Multiplier uint32

const (
	OddsPrecision = 10000

	DefaultMinMultiplier Multiplier = OddsPrecision + 1
	DefaultMaxMultiplier Multiplier = 1000 * OddsPrecision

	// PercentPrecision is 100% expressed in basis points.
	PercentPrecision = 10000
)

// BetType says which side of a market's payout condition a bet is on.
type BetType uint8

const (
	Back BetType = iota
	Lay
)

func (t BetType) Opposite() BetType {
	if t == Back {
		return Lay
	}
	return Back
}

func (t BetType) Valid() bool { return t == Back || t == Lay }

func (t BetType) String() string {
	switch t {
	case Back:
		return "back"
	case Lay:
		return "lay"
	default:
		return fmt.Sprintf("bet_type(%d)", uint8(t))
	}
}

func (t BetType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *BetType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "back":
		*t = Back
	case "lay":
		*t = Lay
	default:
		return errors.Wrapf(ErrInvalidSide, "%q", b)
	}
	return nil
}

// Resolution is the final outcome declared for a market.
type Resolution uint8

const (
	Win Resolution = iota
	NotWin
	Cancel
)

func (r Resolution) Valid() bool { return r <= Cancel }

func (r Resolution) String() string {
	switch r {
	case Win:
		return "win"
	case NotWin:
		return "not_win"
	case Cancel:
		return "cancel"
	default:
		return fmt.Sprintf("resolution(%d)", uint8(r))
	}
}

func (r Resolution) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Resolution) UnmarshalText(b []byte) error {
	switch string(b) {
	case "win":
		*r = Win
	case "not_win":
		*r = NotWin
	case "cancel":
		*r = Cancel
	default:
		return errors.Wrapf(ErrInvalidResolution, "%q", b)
	}
	return nil
}

// Market is an open betting market denominated in a single asset.
type Market struct {
	ID    MarketID
	Asset AssetID
}

// Params are the engine-wide settings every node must agree on.
type Params struct {
	// PercentFee is the share of the stake reserved for fees, in basis points.
	PercentFee    uint32
	FeeAccount    AccountID
	MinMultiplier Multiplier
	MaxMultiplier Multiplier
}

func DefaultParams() Params {
	return Params{
		PercentFee:    200,
		MinMultiplier: DefaultMinMultiplier,
		MaxMultiplier: DefaultMaxMultiplier,
	}
}
