package betting

import (
	"math"

	"github.com/holiman/uint256"
)

// MatchingAmount converts amount between the two sides of a bet at
// multiplier m. For a back stake it returns the lay liability that covers
// it; for a lay liability it returns the back stake it covers. The result
// is floored.
func MatchingAmount(amount int64, m Multiplier, side BetType) int64 {
	assert(amount >= 0, "negative amount %d", amount)
	assert(m > OddsPrecision, "multiplier %d does not exceed %d", m, OddsPrecision)

	x := uint256.NewInt(uint64(amount))
	edge := uint256.NewInt(uint64(m) - OddsPrecision)
	precision := uint256.NewInt(OddsPrecision)
	if side == Back {
		x.Mul(x, edge)
		x.Div(x, precision)
	} else {
		x.Mul(x, precision)
		x.Div(x, edge)
	}
	return toInt64(x)
}

func toInt64(x *uint256.Int) int64 {
	assert(x.IsUint64() && x.Uint64() <= math.MaxInt64, "value %s overflows int64", x.Dec())
	return int64(x.Uint64())
}
