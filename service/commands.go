package service

import (
	"math"

	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"bookie/domain/betting"
	entrywal "bookie/infra/wal/entry"
)

// Command is a state-changing request as it is stored in the command log.
type Command interface {
	Type() entrywal.RecordType
	MarshalBinary() ([]byte, error)
}

type CreateMarket struct {
	Market betting.MarketID
	Asset  betting.AssetID
}

type Deposit struct {
	Account betting.AccountID
	Asset   betting.AssetID
	Amount  int64
}

// PlaceBet carries no bet id; the command's sequence number becomes one.
type PlaceBet struct {
	Bettor     betting.AccountID
	Market     betting.MarketID
	Side       betting.BetType
	Multiplier betting.Multiplier
	Stake      int64
}

type CancelBet struct {
	Bettor betting.AccountID
	Bet    betting.BetID
}

type CancelAllBets struct {
	Market betting.MarketID
}

type ResolveMarket struct {
	Market     betting.MarketID
	Resolution betting.Resolution
}

func (CreateMarket) Type() entrywal.RecordType  { return entrywal.RecordCreateMarket }
func (Deposit) Type() entrywal.RecordType       { return entrywal.RecordDeposit }
func (PlaceBet) Type() entrywal.RecordType      { return entrywal.RecordPlaceBet }
func (CancelBet) Type() entrywal.RecordType     { return entrywal.RecordCancelBet }
func (CancelAllBets) Type() entrywal.RecordType { return entrywal.RecordCancelAllBets }
func (ResolveMarket) Type() entrywal.RecordType { return entrywal.RecordResolveMarket }

// Commands are encoded as protobuf wire format: unsigned fields as varints,
// signed amounts zigzag-encoded. Field numbers are stable; unknown fields
// are skipped on decode.

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(v))
}

func (c CreateMarket) MarshalBinary() ([]byte, error) {
	b := appendUint(nil, 1, uint64(c.Market))
	return appendUint(b, 2, uint64(c.Asset)), nil
}

func (c Deposit) MarshalBinary() ([]byte, error) {
	b := appendUint(nil, 1, uint64(c.Account))
	b = appendUint(b, 2, uint64(c.Asset))
	return appendInt(b, 3, c.Amount), nil
}

func (c PlaceBet) MarshalBinary() ([]byte, error) {
	b := appendUint(nil, 1, uint64(c.Bettor))
	b = appendUint(b, 2, uint64(c.Market))
	b = appendUint(b, 3, uint64(c.Side))
	b = appendUint(b, 4, uint64(c.Multiplier))
	return appendInt(b, 5, c.Stake), nil
}

func (c CancelBet) MarshalBinary() ([]byte, error) {
	b := appendUint(nil, 1, uint64(c.Bettor))
	return appendUint(b, 2, uint64(c.Bet)), nil
}

func (c CancelAllBets) MarshalBinary() ([]byte, error) {
	return appendUint(nil, 1, uint64(c.Market)), nil
}

func (c ResolveMarket) MarshalBinary() ([]byte, error) {
	b := appendUint(nil, 1, uint64(c.Market))
	return appendUint(b, 2, uint64(c.Resolution)), nil
}

// fields reads varint fields into a map keyed by field number.
func fields(data []byte) (map[protowire.Number]uint64, error) {
	out := make(map[protowire.Number]uint64, 5)
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		data = data[n:]

		if typ != protowire.VarintType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			continue
		}

		v, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		data = data[n:]
		out[num] = v
	}
	return out, nil
}

func zigzag(v uint64) int64 { return protowire.DecodeZigZag(v) }

// fitField rejects a value wider than the type field num decodes into.
// Out-of-range values that do fit (an unknown side, say) pass through so
// the engine rejects them on replay exactly as it did live.
func fitField(f map[protowire.Number]uint64, num protowire.Number, limit uint64) error {
	if v := f[num]; v > limit {
		return errors.Newf("field %d: %d exceeds %d", num, v, limit)
	}
	return nil
}

// DecodeCommand rebuilds the command stored in a log record.
func DecodeCommand(t entrywal.RecordType, data []byte) (Command, error) {
	f, err := fields(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", t)
	}

	switch t {
	case entrywal.RecordCreateMarket:
		return CreateMarket{
			Market: betting.MarketID(f[1]),
			Asset:  betting.AssetID(f[2]),
		}, nil
	case entrywal.RecordDeposit:
		return Deposit{
			Account: betting.AccountID(f[1]),
			Asset:   betting.AssetID(f[2]),
			Amount:  zigzag(f[3]),
		}, nil
	case entrywal.RecordPlaceBet:
		if err := fitField(f, 3, math.MaxUint8); err != nil {
			return nil, errors.Wrapf(err, "decode %s side", t)
		}
		if err := fitField(f, 4, math.MaxUint32); err != nil {
			return nil, errors.Wrapf(err, "decode %s multiplier", t)
		}
		return PlaceBet{
			Bettor:     betting.AccountID(f[1]),
			Market:     betting.MarketID(f[2]),
			Side:       betting.BetType(f[3]),
			Multiplier: betting.Multiplier(f[4]),
			Stake:      zigzag(f[5]),
		}, nil
	case entrywal.RecordCancelBet:
		return CancelBet{
			Bettor: betting.AccountID(f[1]),
			Bet:    betting.BetID(f[2]),
		}, nil
	case entrywal.RecordCancelAllBets:
		return CancelAllBets{Market: betting.MarketID(f[1])}, nil
	case entrywal.RecordResolveMarket:
		if err := fitField(f, 2, math.MaxUint8); err != nil {
			return nil, errors.Wrapf(err, "decode %s resolution", t)
		}
		return ResolveMarket{
			Market:     betting.MarketID(f[1]),
			Resolution: betting.Resolution(f[2]),
		}, nil
	default:
		return nil, errors.Newf("unknown record type %d", t)
	}
}
