package betting

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// State is the engine's full book-keeping, in a deterministic order,
// without balances (those belong to the Ledger).
type State struct {
	Markets   []Market
	Bets      []Bet
	Positions []Position
}

func (e *Engine) sortedMarkets() []MarketID {
	ids := make([]MarketID, 0, len(e.markets))
	for id := range e.markets {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Export copies the current state. Bets are in book order and positions
// are ordered by market, then bettor.
func (e *Engine) Export() State {
	var st State
	for _, id := range e.sortedMarkets() {
		st.Markets = append(st.Markets, *e.markets[id])
		for _, b := range e.books[id].bets() {
			st.Bets = append(st.Bets, detach(b))
		}

		byBettor := e.positions[id]
		bettors := make([]AccountID, 0, len(byBettor))
		for bettor := range byBettor {
			bettors = append(bettors, bettor)
		}
		slices.Sort(bettors)
		for _, bettor := range bettors {
			st.Positions = append(st.Positions, *byBettor[bettor])
		}
	}
	return st
}

// Restore replaces the engine's markets, bets and positions with st.
// The ledger is left untouched. On error the engine is unchanged.
func (e *Engine) Restore(st State) error {
	markets, books := e.markets, e.books
	positions, bets := e.positions, e.bets

	e.markets = make(map[MarketID]*Market, len(st.Markets))
	e.books = make(map[MarketID]*marketBook, len(st.Markets))
	e.positions = make(map[MarketID]map[AccountID]*Position, len(st.Markets))
	e.bets = make(map[BetID]*Bet, len(st.Bets))

	_, err := e.apply(func() error {
		for i := range st.Markets {
			m := st.Markets[i]
			if _, dup := e.markets[m.ID]; dup {
				return errors.Wrapf(ErrMarketExists, "restoring market %d", m.ID)
			}
			e.putMarket(&m)
		}
		for i := range st.Bets {
			b := st.Bets[i]
			m, ok := e.markets[b.Market]
			if !ok {
				return errors.Wrapf(ErrMarketNotFound, "restoring bet %d", b.ID)
			}
			if _, dup := e.bets[b.ID]; dup {
				return errors.Wrapf(ErrBetExists, "restoring bet %d", b.ID)
			}
			assert(b.Asset == m.Asset && b.Side.Valid() && b.Stake > 0 && b.FeeReserve >= 0,
				"restoring malformed bet %d", b.ID)
			e.insertBet(&b)
		}
		for i := range st.Positions {
			p := st.Positions[i]
			byBettor, ok := e.positions[p.Market]
			if !ok {
				return errors.Wrapf(ErrMarketNotFound, "restoring position of %d", p.Bettor)
			}
			byBettor[p.Bettor] = &p
		}
		return nil
	})
	if err != nil {
		e.markets, e.books, e.positions, e.bets = markets, books, positions, bets
		return errors.Wrap(err, "restore engine state")
	}
	return nil
}
