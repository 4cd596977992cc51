package betting

import "github.com/cockroachdb/errors"

// PlaceBet is a request to put stake on side of a market at multiplier.
// ID must be unique; the service uses the command sequence number.
type PlaceBet struct {
	ID         BetID
	Bettor     AccountID
	Market     MarketID
	Side       BetType
	Multiplier Multiplier
	Stake      int64
}

// PlaceBet debits stake plus the fee reserve, books the bet and matches it
// against the opposite side. It reports whether the bet was fully filled;
// otherwise the remainder rests in the book.
func (e *Engine) PlaceBet(cmd PlaceBet) (bool, []Event, error) {
	var filled bool
	events, err := e.apply(func() error {
		m, ok := e.markets[cmd.Market]
		if !ok {
			return errors.Wrapf(ErrMarketNotFound, "market %d", cmd.Market)
		}
		if cmd.Stake <= 0 {
			return errors.Wrapf(ErrInvalidStake, "stake %d", cmd.Stake)
		}
		if !cmd.Side.Valid() {
			return ErrInvalidSide
		}
		if cmd.Multiplier < e.params.MinMultiplier || cmd.Multiplier > e.params.MaxMultiplier {
			return errors.Wrapf(ErrInvalidMultiplier, "%d not in [%d, %d]",
				cmd.Multiplier, e.params.MinMultiplier, e.params.MaxMultiplier)
		}
		if _, dup := e.bets[cmd.ID]; dup {
			return errors.Wrapf(ErrBetExists, "bet %d", cmd.ID)
		}

		fee := ReserveFee(cmd.Stake, e.params.PercentFee)
		total := addInt64(cmd.Stake, fee)
		if have := e.ledger.Balance(cmd.Bettor, m.Asset); have < total {
			return errors.Wrapf(ErrInsufficientBalance, "account %d has %d, needs %d", cmd.Bettor, have, total)
		}
		e.adjustBalance(cmd.Bettor, m.Asset, -total)

		bet := &Bet{
			ID:         cmd.ID,
			Bettor:     cmd.Bettor,
			Market:     m.ID,
			Asset:      m.Asset,
			Side:       cmd.Side,
			Multiplier: cmd.Multiplier,
			Stake:      cmd.Stake,
			FeeReserve: fee,
		}
		e.insertBet(bet)
		e.emit(Event{
			Type:       EventBetPlaced,
			Bettor:     bet.Bettor,
			BetID:      bet.ID,
			Market:     bet.Market,
			Asset:      bet.Asset,
			Side:       bet.Side,
			Multiplier: bet.Multiplier,
			Amount:     bet.Stake,
			Fee:        bet.FeeReserve,
		})

		filled = e.placeBet(bet)
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	return filled, events, nil
}

// placeBet matches a freshly inserted bet against the opposite side,
// lowest multiplier first, up to and including its own multiplier. The
// scan stops as soon as a match leaves anything but the maker filled.
func (e *Engine) placeBet(bet *Bet) bool {
	book := e.books[bet.Market]
	result := 0
	done := false

	maker := book.first(bet.Side.Opposite())
	for !done && maker != nil && maker.Multiplier <= bet.Multiplier {
		next := book.after(maker)
		result = e.matchPair(bet, maker)
		done = result != makerFilled
		maker = next
	}
	return result&takerFilled != 0
}

// CancelBet withdraws a resting bet and refunds its stake and fee reserve.
func (e *Engine) CancelBet(bettor AccountID, id BetID) ([]Event, error) {
	return e.apply(func() error {
		bet, ok := e.bets[id]
		if !ok {
			return errors.Wrapf(ErrBetNotFound, "bet %d", id)
		}
		if bet.Bettor != bettor {
			return errors.Wrapf(ErrNotBetOwner, "bet %d", id)
		}
		e.cancelBet(bet, true)
		return nil
	})
}

func (e *Engine) cancelBet(bet *Bet, emit bool) {
	e.adjustBalance(bet.Bettor, bet.Asset, addInt64(bet.Stake, bet.FeeReserve))
	if emit {
		e.emit(Event{
			Type:       EventBetCanceled,
			Bettor:     bet.Bettor,
			BetID:      bet.ID,
			Market:     bet.Market,
			Asset:      bet.Asset,
			Side:       bet.Side,
			Multiplier: bet.Multiplier,
			Amount:     bet.Stake,
			Fee:        bet.FeeReserve,
		})
	}
	e.removeBet(bet)
}

// CancelAllBets cancels every resting bet in a market.
func (e *Engine) CancelAllBets(market MarketID) ([]Event, error) {
	return e.apply(func() error {
		if _, ok := e.markets[market]; !ok {
			return errors.Wrapf(ErrMarketNotFound, "market %d", market)
		}
		e.cancelAllBets(market)
		return nil
	})
}

func (e *Engine) cancelAllBets(market MarketID) {
	for _, bet := range e.books[market].bets() {
		e.cancelBet(bet, true)
	}
}
