package betting

// Position is a bettor's netted exposure in one market. Each field is what
// the bettor is owed if the named condition holds at resolution.
type Position struct {
	Bettor AccountID
	Market MarketID

	PayIfPayoutCondition    int64
	PayIfNotPayoutCondition int64
	PayIfCanceled           int64
	PayIfNotCanceled        int64
	FeesCollected           int64
}

// ReduceExposure nets offsetting exposure. Whatever is owed under both the
// win and not-win outcomes is owed whenever the market is not canceled;
// whatever is owed both when canceled and when not canceled is owed
// unconditionally and is returned as guaranteed. Every outcome's payout
// drops by exactly guaranteed, and afterwards at least one field is zero.
func ReduceExposure(payout, notPayout, canceled, notCanceled int64) (int64, int64, int64, int64, int64) {
	m := min(payout, notPayout)
	payout -= m
	notPayout -= m
	notCanceled = addInt64(notCanceled, m)

	g := min(canceled, notCanceled)
	canceled -= g
	notCanceled -= g
	return payout, notPayout, canceled, notCanceled, g
}

func (p *Position) Reduce() int64 {
	var g int64
	p.PayIfPayoutCondition, p.PayIfNotPayoutCondition, p.PayIfCanceled, p.PayIfNotCanceled, g =
		ReduceExposure(p.PayIfPayoutCondition, p.PayIfNotPayoutCondition, p.PayIfCanceled, p.PayIfNotCanceled)
	return g
}

// Payout is what the position pays under resolution r.
func (p *Position) Payout(r Resolution) int64 {
	switch r {
	case Win:
		return addInt64(p.PayIfPayoutCondition, p.PayIfNotCanceled)
	case NotWin:
		return addInt64(p.PayIfNotPayoutCondition, p.PayIfNotCanceled)
	case Cancel:
		return p.PayIfCanceled
	}
	assert(false, "unknown resolution %d", r)
	return 0
}
