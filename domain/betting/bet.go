package betting

// Bet is a wager resting in (or being matched against) the book.
type Bet struct {
	ID         BetID
	Bettor     AccountID
	Market     MarketID
	Asset      AssetID
	Side       BetType
	Multiplier Multiplier
	Stake      int64
	FeeReserve int64

	level *Level
	next  *Bet
	prev  *Bet
}

// MatchingAmount is what the opposing side must put up to match the
// bet's remaining stake at its own multiplier.
func (b *Bet) MatchingAmount() int64 {
	return MatchingAmount(b.Stake, b.Multiplier, b.Side)
}

func (b *Bet) Next() *Bet {
	return b.next
}
