package betting

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
)

func mustAssert(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.IsAssertionFailure(err) {
			t.Fatalf("expected assertion failure, got %v", r)
		}
	}()
	fn()
}

func TestMatchingAmount(t *testing.T) {
	cases := []struct {
		amount int64
		m      Multiplier
		side   BetType
		want   int64
	}{
		{100, 30000, Back, 200},
		{200, 30000, Lay, 100},
		{100, 20000, Back, 100},
		{100, 25000, Lay, 66},
		{1, 10001, Back, 0},
		{1, 10001, Lay, 10000},
		{1, 30000, Lay, 0},
		{0, 20000, Back, 0},
	}
	for _, c := range cases {
		if got := MatchingAmount(c.amount, c.m, c.side); got != c.want {
			t.Errorf("MatchingAmount(%d, %d, %s) = %d, want %d", c.amount, c.m, c.side, got, c.want)
		}
	}
}

func TestMatchingAmountContract(t *testing.T) {
	mustAssert(t, func() { MatchingAmount(100, OddsPrecision, Back) })
	mustAssert(t, func() { MatchingAmount(-1, 20000, Back) })
	mustAssert(t, func() { MatchingAmount(math.MaxInt64, 10001, Lay) })
}

func TestMatchingAmountWideIntermediate(t *testing.T) {
	// amount * 10000 overflows int64 but the quotient fits.
	amount := int64(math.MaxInt64 / 1000)
	if got := MatchingAmount(amount, 20000, Lay); got != amount {
		t.Fatalf("got %d, want %d", got, amount)
	}
}
