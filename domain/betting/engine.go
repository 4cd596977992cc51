package betting

import (
	"github.com/cockroachdb/errors"
)

// Engine is the single-writer settlement state machine. It is not safe for
// concurrent use.
type Engine struct {
	params Params
	ledger Ledger

	markets   map[MarketID]*Market
	books     map[MarketID]*marketBook
	positions map[MarketID]map[AccountID]*Position
	bets      map[BetID]*Bet

	undo    undoLog
	pending []Event
}

func NewEngine(params Params, ledger Ledger) *Engine {
	return &Engine{
		params:    params,
		ledger:    ledger,
		markets:   make(map[MarketID]*Market),
		books:     make(map[MarketID]*marketBook),
		positions: make(map[MarketID]map[AccountID]*Position),
		bets:      make(map[BetID]*Bet),
	}
}

func (e *Engine) Params() Params { return e.params }

// apply runs op atomically. If op returns an error or raises an assertion,
// everything it changed is rolled back and no events are returned.
func (e *Engine) apply(op func() error) (events []Event, err error) {
	e.pending = nil
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if !ok || !errors.IsAssertionFailure(perr) {
				e.undo.rollback()
				e.pending = nil
				panic(r)
			}
			err = perr
		}
		if err != nil {
			e.undo.rollback()
			e.pending = nil
			events = nil
			return
		}
		e.undo.commit()
		events, e.pending = e.pending, nil
	}()

	if err = op(); err != nil {
		return nil, err
	}
	return nil, nil
}

func (e *Engine) emit(ev Event) {
	e.pending = append(e.pending, ev)
}

// CreateMarket opens an empty market denominated in asset.
func (e *Engine) CreateMarket(id MarketID, asset AssetID) ([]Event, error) {
	return e.apply(func() error {
		if _, ok := e.markets[id]; ok {
			return errors.Wrapf(ErrMarketExists, "market %d", id)
		}
		e.putMarket(&Market{ID: id, Asset: asset})
		return nil
	})
}

// Deposit credits amount of asset to account.
func (e *Engine) Deposit(account AccountID, asset AssetID, amount int64) ([]Event, error) {
	return e.apply(func() error {
		if amount <= 0 {
			return errors.Wrapf(ErrInvalidAmount, "deposit of %d", amount)
		}
		e.adjustBalance(account, asset, amount)
		return nil
	})
}

/******************** Queries ********************/

func (e *Engine) Balance(account AccountID, asset AssetID) int64 {
	return e.ledger.Balance(account, asset)
}

func (e *Engine) Market(id MarketID) (Market, bool) {
	m, ok := e.markets[id]
	if !ok {
		return Market{}, false
	}
	return *m, true
}

// Bet returns a detached copy of a resting bet.
func (e *Engine) Bet(id BetID) (Bet, bool) {
	b, ok := e.bets[id]
	if !ok {
		return Bet{}, false
	}
	return detach(b), true
}

func (e *Engine) Position(bettor AccountID, market MarketID) (Position, bool) {
	p, ok := e.positions[market][bettor]
	if !ok {
		return Position{}, false
	}
	return *p, true
}

// BookDepth aggregates the levels on one side of a market, best first.
// limit <= 0 returns every level.
func (e *Engine) BookDepth(market MarketID, side BetType, limit int) ([]LevelDepth, error) {
	book, ok := e.books[market]
	if !ok {
		return nil, errors.Wrapf(ErrMarketNotFound, "market %d", market)
	}
	if !side.Valid() {
		return nil, ErrInvalidSide
	}
	return book.depth(side, limit), nil
}

func detach(b *Bet) Bet {
	c := *b
	c.level, c.next, c.prev = nil, nil, nil
	return c
}

/******************** Undoable mutations ********************/

func (e *Engine) adjustBalance(account AccountID, asset AssetID, delta int64) {
	if delta == 0 {
		return
	}
	e.ledger.Adjust(account, asset, delta)
	e.undo.push(func() { e.ledger.Adjust(account, asset, -delta) })
}

func (e *Engine) putMarket(m *Market) {
	e.markets[m.ID] = m
	e.books[m.ID] = newMarketBook()
	e.positions[m.ID] = make(map[AccountID]*Position)
	e.undo.push(func() {
		delete(e.markets, m.ID)
		delete(e.books, m.ID)
		delete(e.positions, m.ID)
	})
}

func (e *Engine) removeMarket(m *Market) {
	book, positions := e.books[m.ID], e.positions[m.ID]
	assert(book.empty(), "market %d removed with resting bets", m.ID)
	assert(len(positions) == 0, "market %d removed with open positions", m.ID)
	delete(e.markets, m.ID)
	delete(e.books, m.ID)
	delete(e.positions, m.ID)
	e.undo.push(func() {
		e.markets[m.ID] = m
		e.books[m.ID] = book
		e.positions[m.ID] = positions
	})
}

func (e *Engine) insertBet(b *Bet) {
	e.bets[b.ID] = b
	e.books[b.Market].insert(b)
	e.undo.push(func() {
		e.books[b.Market].remove(b)
		delete(e.bets, b.ID)
	})
}

func (e *Engine) removeBet(b *Bet) {
	e.books[b.Market].remove(b)
	delete(e.bets, b.ID)
	e.undo.push(func() {
		e.bets[b.ID] = b
		e.books[b.Market].insert(b)
	})
}

func (e *Engine) modifyBet(b *Bet, stake, feeReserve int64) {
	assert(stake > 0 && feeReserve >= 0, "bet %d resized to stake %d fee %d", b.ID, stake, feeReserve)
	oldStake, oldFee := b.Stake, b.FeeReserve
	e.books[b.Market].resize(b, stake)
	b.FeeReserve = feeReserve
	e.undo.push(func() {
		e.books[b.Market].resize(b, oldStake)
		b.FeeReserve = oldFee
	})
}

// position returns the bettor's position in market, creating it if absent.
func (e *Engine) position(bettor AccountID, market MarketID) *Position {
	byBettor := e.positions[market]
	if p, ok := byBettor[bettor]; ok {
		saved := *p
		e.undo.push(func() { *p = saved })
		return p
	}
	p := &Position{Bettor: bettor, Market: market}
	byBettor[bettor] = p
	e.undo.push(func() { delete(byBettor, bettor) })
	return p
}

func (e *Engine) removePosition(p *Position) {
	byBettor := e.positions[p.Market]
	delete(byBettor, p.Bettor)
	e.undo.push(func() { byBettor[p.Bettor] = p })
}
