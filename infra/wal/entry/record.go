package entry

import "time"

// RecordType identifies the command a record carries.
type RecordType uint8

const (
	RecordCreateMarket RecordType = iota + 1
	RecordDeposit
	RecordPlaceBet
	RecordCancelBet
	RecordCancelAllBets
	RecordResolveMarket
)

func (t RecordType) String() string {
	switch t {
	case RecordCreateMarket:
		return "create_market"
	case RecordDeposit:
		return "deposit"
	case RecordPlaceBet:
		return "place_bet"
	case RecordCancelBet:
		return "cancel_bet"
	case RecordCancelAllBets:
		return "cancel_all_bets"
	case RecordResolveMarket:
		return "resolve_market"
	default:
		return "unknown"
	}
}

// Record is one framed WAL entry. Time is informational only; replay
// never feeds it to the engine.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
