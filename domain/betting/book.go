package betting

// marketBook holds the resting bets of one market: one tree per side.
type marketBook struct {
	backs *RBTree
	lays  *RBTree
}

func newMarketBook() *marketBook {
	return &marketBook{backs: NewRBTree(), lays: NewRBTree()}
}

func (b *marketBook) tree(side BetType) *RBTree {
	if side == Back {
		return b.backs
	}
	return b.lays
}

func (b *marketBook) insert(bet *Bet) {
	b.tree(bet.Side).UpsertLevel(bet.Multiplier).Insert(bet)
}

func (b *marketBook) remove(bet *Bet) {
	lvl := bet.level
	assert(lvl != nil, "bet %d is not in the book", bet.ID)
	lvl.unlink(bet)
	if lvl.Empty() {
		b.tree(bet.Side).DeleteLevel(lvl.Multiplier)
	}
}

func (b *marketBook) resize(bet *Bet, stake int64) {
	bet.level.TotalStake += stake - bet.Stake
	bet.Stake = stake
}

// first returns the best-priced bet on a side: lowest multiplier, oldest.
func (b *marketBook) first(side BetType) *Bet {
	lvl := b.tree(side).MinLevel()
	if lvl == nil {
		return nil
	}
	return lvl.head
}

// after returns the bet that follows bet in scan order. It must be called
// while bet is still in the book.
func (b *marketBook) after(bet *Bet) *Bet {
	if bet.next != nil {
		return bet.next
	}
	lvl := b.tree(bet.Side).Successor(bet.Multiplier)
	if lvl == nil {
		return nil
	}
	return lvl.head
}

// bets lists every resting bet: backs then lays, ascending multiplier, FIFO.
func (b *marketBook) bets() []*Bet {
	var out []*Bet
	for _, t := range []*RBTree{b.backs, b.lays} {
		t.ForEachAscending(func(lvl *Level) bool {
			for bet := lvl.head; bet != nil; bet = bet.next {
				out = append(out, bet)
			}
			return true
		})
	}
	return out
}

func (b *marketBook) empty() bool {
	return b.backs.Size() == 0 && b.lays.Size() == 0
}

// LevelDepth is an aggregated view of one level.
type LevelDepth struct {
	Multiplier Multiplier
	TotalStake int64
	Bets       int
}

func (b *marketBook) depth(side BetType, limit int) []LevelDepth {
	var out []LevelDepth
	b.tree(side).ForEachAscending(func(lvl *Level) bool {
		if limit > 0 && len(out) == limit {
			return false
		}
		out = append(out, LevelDepth{Multiplier: lvl.Multiplier, TotalStake: lvl.TotalStake, Bets: lvl.BetCount})
		return true
	})
	return out
}
