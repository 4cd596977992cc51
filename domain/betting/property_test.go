package betting

import (
	"testing"

	"github.com/cockroachdb/errors"
	"pgregory.net/rapid"
)

var propertyMultipliers = []Multiplier{10001, 10500, 15000, 20000, 25000, 30000, 110000}

// custody is what the engine holds for outcome r: resting stakes and fee
// reserves plus every position's payout and collected fees.
func custody(e *Engine, r Resolution) int64 {
	var sum int64
	st := e.Export()
	for _, b := range st.Bets {
		sum += b.Stake + b.FeeReserve
	}
	for i := range st.Positions {
		sum += st.Positions[i].Payout(r) + st.Positions[i].FeesCollected
	}
	return sum
}

func TestPropertyFundsConserved(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		params := DefaultParams()
		params.PercentFee = uint32(rapid.IntRange(0, 1000).Draw(t, "fee"))
		params.FeeAccount = feeAccount
		acc := NewAccounts()
		e := NewEngine(params, acc)
		if _, err := e.CreateMarket(testMarket, testAsset); err != nil {
			t.Fatalf("create market: %v", err)
		}

		const bettors = 4
		var deposited int64
		for b := AccountID(1); b <= bettors; b++ {
			amount := rapid.Int64Range(1, 100000).Draw(t, "deposit")
			if _, err := e.Deposit(b, testAsset, amount); err != nil {
				t.Fatalf("deposit: %v", err)
			}
			deposited += amount
		}

		check := func(step string) {
			total, err := acc.Total(testAsset)
			if err != nil {
				t.Fatalf("%s: %v", step, err)
			}
			for _, r := range []Resolution{Win, NotWin, Cancel} {
				if got := total + custody(e, r); got != deposited {
					t.Fatalf("%s: funds under %s = %d, deposited %d", step, r, got, deposited)
				}
			}
			for _, p := range e.Export().Positions {
				if m := min(p.PayIfPayoutCondition, p.PayIfNotPayoutCondition, p.PayIfCanceled, p.PayIfNotCanceled); m != 0 {
					t.Fatalf("%s: position of %d not netted: %+v", step, p.Bettor, p)
				}
			}
		}

		nextID := BetID(1)
		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.IntRange(0, 4).Draw(t, "op") == 0 {
				bets := e.Export().Bets
				if len(bets) == 0 {
					continue
				}
				b := bets[rapid.IntRange(0, len(bets)-1).Draw(t, "victim")]
				if _, err := e.CancelBet(b.Bettor, b.ID); err != nil {
					t.Fatalf("cancel %d: %v", b.ID, err)
				}
				check("cancel")
				continue
			}

			cmd := PlaceBet{
				ID:         nextID,
				Bettor:     AccountID(rapid.IntRange(1, bettors).Draw(t, "bettor")),
				Market:     testMarket,
				Side:       BetType(rapid.IntRange(0, 1).Draw(t, "side")),
				Multiplier: rapid.SampledFrom(propertyMultipliers).Draw(t, "multiplier"),
				Stake:      rapid.Int64Range(1, 5000).Draw(t, "stake"),
			}
			nextID++
			_, events, err := e.PlaceBet(cmd)
			if err != nil {
				if !errors.Is(err, ErrInsufficientBalance) {
					t.Fatalf("place %+v: %v", cmd, err)
				}
				continue
			}
			for _, ev := range events {
				if ev.Type == EventBetMatched && ev.Amount <= 0 {
					t.Fatalf("empty fill event %+v", ev)
				}
			}
			check("place")
		}

		r := Resolution(rapid.IntRange(0, 2).Draw(t, "resolution"))
		if _, err := e.ResolveMarket(testMarket, r); err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if got, err := acc.Total(testAsset); err != nil || got != deposited {
			t.Fatalf("after %s resolution balances total %d, deposited %d", r, got, deposited)
		}
	})
}

func TestPropertyMatchPairFillsOneSide(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := NewEngine(DefaultParams(), NewAccounts())
		if _, err := e.CreateMarket(testMarket, testAsset); err != nil {
			t.Fatalf("create market: %v", err)
		}
		e.ledger.Adjust(1, testAsset, 1<<40)
		e.ledger.Adjust(2, testAsset, 1<<40)

		mi := rapid.IntRange(0, len(propertyMultipliers)-1).Draw(t, "maker_m")
		ti := rapid.IntRange(mi, len(propertyMultipliers)-1).Draw(t, "taker_m")
		makerM, takerM := propertyMultipliers[mi], propertyMultipliers[ti]
		makerSide := BetType(rapid.IntRange(0, 1).Draw(t, "maker_side"))
		maker := &Bet{ID: 1, Bettor: 1, Market: testMarket, Asset: testAsset, Side: makerSide, Multiplier: makerM,
			Stake: rapid.Int64Range(1, 1_000_000).Draw(t, "maker_stake")}
		taker := &Bet{ID: 2, Bettor: 2, Market: testMarket, Asset: testAsset, Side: makerSide.Opposite(), Multiplier: takerM,
			Stake: rapid.Int64Range(1, 1_000_000).Draw(t, "taker_stake")}

		var result int
		_, err := e.apply(func() error {
			e.insertBet(maker)
			e.insertBet(taker)
			result = e.matchPair(taker, maker)
			return nil
		})
		if err != nil {
			t.Fatalf("match: %v", err)
		}
		if result == 0 {
			t.Fatal("matchPair filled neither bet")
		}
		_, makerLeft := e.Bet(1)
		_, takerLeft := e.Bet(2)
		if makerLeft && takerLeft {
			t.Fatalf("both bets still rest after result %d", result)
		}
	})
}
