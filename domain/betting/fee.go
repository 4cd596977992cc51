package betting

import "github.com/holiman/uint256"

// FeeForPartialFill is the share of a fee reserve consumed when matched
// out of stake is filled, rounded up so the fee collected over a bet's
// fills never falls short of the reserve.
func FeeForPartialFill(reserved, stake, matched int64) int64 {
	assert(stake > 0, "fee split over non-positive stake %d", stake)
	assert(reserved >= 0 && matched >= 0, "negative fee input: reserved %d matched %d", reserved, matched)

	n := new(uint256.Int).Mul(uint256.NewInt(uint64(reserved)), uint256.NewInt(uint64(matched)))
	n.Add(n, uint256.NewInt(uint64(stake-1)))
	n.Div(n, uint256.NewInt(uint64(stake)))
	return toInt64(n)
}

// ReserveFee is the fee withheld when a bet of stake is placed at
// percentFee basis points.
func ReserveFee(stake int64, percentFee uint32) int64 {
	assert(stake >= 0, "negative stake %d", stake)
	n := new(uint256.Int).Mul(uint256.NewInt(uint64(stake)), uint256.NewInt(uint64(percentFee)))
	n.Div(n, uint256.NewInt(PercentPrecision))
	return toInt64(n)
}
