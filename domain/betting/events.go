package betting

type EventType string

const (
	EventBetPlaced      EventType = "bet_placed"
	EventBetMatched     EventType = "bet_matched"
	EventBetCanceled    EventType = "bet_canceled"
	EventMarketResolved EventType = "market_resolved"
)

// Event is a record of something the engine did. Fields that do not apply
// to a type are left zero.
//
//	bet_placed       Bettor BetID Market Side Multiplier Amount(stake) Fee(reserve)
//	bet_matched      Bettor BetID Market Side Multiplier(applied) Amount Fee Guaranteed
//	bet_canceled     Bettor BetID Market Side Multiplier Amount(refunded stake) Fee(refunded reserve)
//	market_resolved  Market Resolution Amount(total paid) Fee(total fees)
type Event struct {
	Type       EventType  `json:"type"`
	Bettor     AccountID  `json:"bettor,omitempty"`
	BetID      BetID      `json:"bet_id,omitempty"`
	Market     MarketID   `json:"market"`
	Asset      AssetID    `json:"asset"`
	Side       BetType    `json:"side"`
	Multiplier Multiplier `json:"multiplier,omitempty"`
	Amount     int64      `json:"amount"`
	Fee        int64      `json:"fee"`
	Guaranteed int64      `json:"guaranteed,omitempty"`
	Resolution Resolution `json:"resolution"`
}

// Envelope tags an event with the command that produced it. Index is the
// event's position in that command's output.
type Envelope struct {
	Seq   uint64 `json:"seq"`
	Index int    `json:"index"`
	Event Event  `json:"event"`
}
