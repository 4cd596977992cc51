package betting

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// ResolveMarket cancels the market's resting bets, pays every position
// according to r, sweeps collected fees to the fee account and deletes
// the market.
func (e *Engine) ResolveMarket(market MarketID, r Resolution) ([]Event, error) {
	return e.apply(func() error {
		m, ok := e.markets[market]
		if !ok {
			return errors.Wrapf(ErrMarketNotFound, "market %d", market)
		}
		if !r.Valid() {
			return errors.Wrapf(ErrInvalidResolution, "%d", r)
		}

		e.cancelAllBets(market)

		byBettor := e.positions[market]
		bettors := make([]AccountID, 0, len(byBettor))
		for id := range byBettor {
			bettors = append(bettors, id)
		}
		slices.Sort(bettors)

		var paid, fees int64
		for _, id := range bettors {
			p := byBettor[id]
			payout := p.Payout(r)
			e.adjustBalance(p.Bettor, m.Asset, payout)
			e.adjustBalance(e.params.FeeAccount, m.Asset, p.FeesCollected)
			paid = addInt64(paid, payout)
			fees = addInt64(fees, p.FeesCollected)
			e.removePosition(p)
		}

		e.emit(Event{
			Type:       EventMarketResolved,
			Market:     m.ID,
			Asset:      m.Asset,
			Resolution: r,
			Amount:     paid,
			Fee:        fees,
		})
		e.removeMarket(m)
		return nil
	})
}
