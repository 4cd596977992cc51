package betting

// Result bits of matchPair.
const (
	takerFilled = 1 << iota
	makerFilled
)

// adjustPosition books a fill into the bettor's position and returns the
// amount the netting released, which the caller must credit. counterStake
// is what the other side put up in the same fill.
func (e *Engine) adjustPosition(bettor AccountID, market MarketID, side BetType, stake, counterStake, feePaid int64) int64 {
	if stake == 0 {
		return 0
	}
	assert(stake > 0 && counterStake >= 0 && feePaid >= 0,
		"bad fill for bettor %d: stake %d counter %d fee %d", bettor, stake, counterStake, feePaid)

	p := e.position(bettor, market)
	winnings := addInt64(stake, counterStake)
	if side == Back {
		p.PayIfPayoutCondition = addInt64(p.PayIfPayoutCondition, winnings)
	} else {
		p.PayIfNotPayoutCondition = addInt64(p.PayIfNotPayoutCondition, winnings)
	}
	p.PayIfCanceled = addInt64(p.PayIfCanceled, stake)
	p.FeesCollected = addInt64(p.FeesCollected, feePaid)
	return p.Reduce()
}

// settleFill applies a fill of matched out of bet's stake against
// counterMatched from the other side at multiplier price, and reports
// whether the bet left the book.
func (e *Engine) settleFill(bet *Bet, matched, counterMatched int64, price Multiplier, cullIfSmall bool) bool {
	assert(matched > 0 && matched <= bet.Stake, "bet %d: fill of %d against stake %d", bet.ID, matched, bet.Stake)

	fee := FeeForPartialFill(bet.FeeReserve, bet.Stake, matched)
	guaranteed := e.adjustPosition(bet.Bettor, bet.Market, bet.Side, matched, counterMatched, fee)
	e.adjustBalance(bet.Bettor, bet.Asset, guaranteed)

	e.emit(Event{
		Type:       EventBetMatched,
		Bettor:     bet.Bettor,
		BetID:      bet.ID,
		Market:     bet.Market,
		Asset:      bet.Asset,
		Side:       bet.Side,
		Multiplier: price,
		Amount:     matched,
		Fee:        fee,
		Guaranteed: guaranteed,
	})

	if matched == bet.Stake {
		e.removeBet(bet)
		return true
	}
	e.modifyBet(bet, bet.Stake-matched, bet.FeeReserve-fee)
	if cullIfSmall {
		return e.maybeCull(bet)
	}
	return false
}

// maybeCull cancels a remainder too small to ever match at its own price.
func (e *Engine) maybeCull(bet *Bet) bool {
	if bet.MatchingAmount() == 0 {
		e.cancelBet(bet, true)
		return true
	}
	return false
}

// matchPair fills taker against a resting maker at the maker's multiplier.
// At least one of the two always leaves the book.
func (e *Engine) matchPair(taker, maker *Bet) int {
	assert(taker.Asset == maker.Asset, "bets %d and %d are in different assets", taker.ID, maker.ID)
	assert(taker.Stake > 0 && maker.Stake > 0, "bets %d and %d: empty stake", taker.ID, maker.ID)
	assert(taker.Side != maker.Side, "bets %d and %d are on the same side", taker.ID, maker.ID)
	assert(taker.Multiplier >= maker.Multiplier,
		"bet %d at %d cannot match bet %d at %d", taker.ID, taker.Multiplier, maker.ID, maker.Multiplier)

	price := maker.Multiplier
	result := 0

	takerCap := MatchingAmount(taker.Stake, price, taker.Side)
	switch {
	case takerCap == 0:
		e.cancelBet(taker, true)
		result = takerFilled
	case takerCap <= maker.Stake:
		takerStake := taker.Stake
		if e.settleFill(taker, takerStake, takerCap, price, true) {
			result |= takerFilled
		}
		if e.settleFill(maker, takerCap, takerStake, price, true) {
			result |= makerFilled
		}
	default:
		makerCap := maker.MatchingAmount()
		if makerCap == 0 {
			e.cancelBet(maker, true)
			result = makerFilled
			break
		}
		makerStake := maker.Stake
		if e.settleFill(taker, makerCap, makerStake, price, true) {
			result |= takerFilled
		}
		if e.settleFill(maker, makerStake, makerCap, price, true) {
			result |= makerFilled
		}
	}

	assert(result != 0, "match of bets %d and %d filled neither", taker.ID, maker.ID)
	return result
}
