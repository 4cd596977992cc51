package betting

import "testing"

func TestReduceExposure(t *testing.T) {
	cases := []struct {
		name       string
		in         [4]int64
		out        [4]int64
		guaranteed int64
	}{
		{"one sided", [4]int64{300, 0, 100, 0}, [4]int64{300, 0, 100, 0}, 0},
		{"fully hedged", [4]int64{300, 300, 300, 0}, [4]int64{0, 0, 0, 0}, 300},
		{"partly hedged", [4]int64{300, 150, 200, 0}, [4]int64{150, 0, 50, 0}, 150},
		{"not canceled only", [4]int64{0, 0, 0, 40}, [4]int64{0, 0, 0, 40}, 0},
	}
	for _, c := range cases {
		p, np, cn, nc, g := ReduceExposure(c.in[0], c.in[1], c.in[2], c.in[3])
		if got := [4]int64{p, np, cn, nc}; got != c.out || g != c.guaranteed {
			t.Errorf("%s: got %v g=%d, want %v g=%d", c.name, got, g, c.out, c.guaranteed)
		}
	}
}

func TestReduceKeepsOutcomeDifferences(t *testing.T) {
	p := Position{PayIfPayoutCondition: 500, PayIfNotPayoutCondition: 120, PayIfCanceled: 400, PayIfNotCanceled: 30}
	before := [3]int64{p.Payout(Win), p.Payout(NotWin), p.Payout(Cancel)}
	g := p.Reduce()
	after := [3]int64{p.Payout(Win), p.Payout(NotWin), p.Payout(Cancel)}
	for i := range before {
		if before[i]-after[i] != g {
			t.Fatalf("outcome %d dropped by %d, want %d", i, before[i]-after[i], g)
		}
	}
	if m := min(p.PayIfPayoutCondition, p.PayIfNotPayoutCondition, p.PayIfCanceled, p.PayIfNotCanceled); m != 0 {
		t.Fatalf("min field = %d after reduce", m)
	}
}
