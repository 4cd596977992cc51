package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"bookie/domain/betting"
	"bookie/infra/metrics"
	"bookie/infra/sequence"
	entrywal "bookie/infra/wal/entry"
	exitwal "bookie/infra/wal/exit"
)

// ErrEventsNotStored means the command was applied but its events could not
// be written to the outbox. Recovery restores them from the command log.
var ErrEventsNotStored = errors.New("events not stored")

// Result is what a command did.
type Result struct {
	Seq    uint64
	BetID  betting.BetID
	Filled bool
	Events []betting.Event
}

// BettingService serializes every command through the log and the engine.
type BettingService struct {
	mu sync.Mutex

	engine  *betting.Engine
	ledger  *betting.Accounts
	seq     *sequence.Sequencer
	wal     *entrywal.WAL
	outbox  *exitwal.Outbox
	metrics *metrics.Metrics
	log     *zap.Logger
}

// New wires the service. The engine must have been built on ledger.
// metrics may be nil.
func New(
	engine *betting.Engine,
	ledger *betting.Accounts,
	seq *sequence.Sequencer,
	wal *entrywal.WAL,
	outbox *exitwal.Outbox,
	m *metrics.Metrics,
	log *zap.Logger,
) *BettingService {
	return &BettingService{
		engine:  engine,
		ledger:  ledger,
		seq:     seq,
		wal:     wal,
		outbox:  outbox,
		metrics: m,
		log:     log.Named("service"),
	}
}

func (s *BettingService) CreateMarket(ctx context.Context, c CreateMarket) (Result, error) {
	return s.submit(ctx, c)
}

func (s *BettingService) Deposit(ctx context.Context, c Deposit) (Result, error) {
	return s.submit(ctx, c)
}

func (s *BettingService) PlaceBet(ctx context.Context, c PlaceBet) (Result, error) {
	return s.submit(ctx, c)
}

func (s *BettingService) CancelBet(ctx context.Context, c CancelBet) (Result, error) {
	return s.submit(ctx, c)
}

func (s *BettingService) CancelAllBets(ctx context.Context, c CancelAllBets) (Result, error) {
	return s.submit(ctx, c)
}

func (s *BettingService) ResolveMarket(ctx context.Context, c ResolveMarket) (Result, error) {
	return s.submit(ctx, c)
}

// submit logs cmd, applies it and stores its events. A command the engine
// rejects stays in the log; replay rejects it the same way.
func (s *BettingService) submit(ctx context.Context, cmd Command) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	data, err := cmd.MarshalBinary()
	if err != nil {
		return Result{}, errors.Wrapf(err, "encode %s", cmd.Type())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	seq := s.seq.Next()
	if err := s.wal.Append(entrywal.NewRecord(cmd.Type(), seq, data)); err != nil {
		s.observe(cmd, "error", start, nil)
		return Result{}, errors.Wrapf(err, "log command %d", seq)
	}

	res, err := s.apply(seq, cmd)
	if err != nil {
		s.observe(cmd, outcome(err), start, nil)
		return Result{Seq: seq}, err
	}

	if err := s.store(seq, res.Events, false); err != nil {
		s.log.Error("outbox append failed",
			zap.Uint64("seq", seq), zap.Stringer("command", cmd.Type()), zap.Error(err))
		s.observe(cmd, "error", start, res.Events)
		return res, errors.Mark(errors.Wrapf(err, "command %d", seq), ErrEventsNotStored)
	}

	s.observe(cmd, "ok", start, res.Events)
	return res, nil
}

// apply runs cmd against the engine with seq as its identity.
func (s *BettingService) apply(seq uint64, cmd Command) (Result, error) {
	res := Result{Seq: seq}
	var err error

	switch c := cmd.(type) {
	case CreateMarket:
		res.Events, err = s.engine.CreateMarket(c.Market, c.Asset)
	case Deposit:
		res.Events, err = s.engine.Deposit(c.Account, c.Asset, c.Amount)
	case PlaceBet:
		res.BetID = betting.BetID(seq)
		res.Filled, res.Events, err = s.engine.PlaceBet(betting.PlaceBet{
			ID:         res.BetID,
			Bettor:     c.Bettor,
			Market:     c.Market,
			Side:       c.Side,
			Multiplier: c.Multiplier,
			Stake:      c.Stake,
		})
	case CancelBet:
		res.Events, err = s.engine.CancelBet(c.Bettor, c.Bet)
	case CancelAllBets:
		res.Events, err = s.engine.CancelAllBets(c.Market)
	case ResolveMarket:
		res.Events, err = s.engine.ResolveMarket(c.Market, c.Resolution)
	default:
		err = errors.AssertionFailedf("unhandled command %T", cmd)
	}
	if err != nil {
		return Result{Seq: seq}, err
	}
	return res, nil
}

func (s *BettingService) store(seq uint64, events []betting.Event, replaying bool) error {
	if len(events) == 0 {
		return nil
	}
	payloads := make([][]byte, len(events))
	for i, ev := range events {
		b, err := json.Marshal(betting.Envelope{Seq: seq, Index: i, Event: ev})
		if err != nil {
			return err
		}
		payloads[i] = b
	}
	return s.outbox.Append(seq, payloads, replaying)
}

func outcome(err error) string {
	if errors.IsAssertionFailure(err) {
		return "fault"
	}
	return "rejected"
}

func (s *BettingService) observe(cmd Command, result string, start time.Time, events []betting.Event) {
	if s.metrics == nil {
		return
	}
	kind := cmd.Type().String()
	s.metrics.Commands.WithLabelValues(kind, result).Inc()
	s.metrics.ApplySeconds.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	for _, ev := range events {
		switch ev.Type {
		case betting.EventBetMatched:
			s.metrics.Fills.Inc()
		case betting.EventBetCanceled:
			s.metrics.Cancellations.Inc()
		case betting.EventMarketResolved:
			s.metrics.Resolutions.WithLabelValues(ev.Resolution.String()).Inc()
			s.metrics.FeesCollected.Add(float64(ev.Fee))
		}
	}
}

func (s *BettingService) Balance(account betting.AccountID, asset betting.AssetID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Balance(account, asset)
}

func (s *BettingService) Market(id betting.MarketID) (betting.Market, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Market(id)
}

func (s *BettingService) Bet(id betting.BetID) (betting.Bet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Bet(id)
}

func (s *BettingService) Position(bettor betting.AccountID, market betting.MarketID) (betting.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Position(bettor, market)
}

func (s *BettingService) BookDepth(market betting.MarketID, side betting.BetType, limit int) ([]betting.LevelDepth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.BookDepth(market, side, limit)
}

// LastSeq is the sequence of the newest logged command.
func (s *BettingService) LastSeq() uint64 {
	return s.seq.Current()
}

// Health reports whether the outbox is readable.
func (s *BettingService) Health(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.outbox.Count()
	return err
}

// Close flushes and closes the command log. The outbox is owned by the
// caller since the broadcaster shares it.
func (s *BettingService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.CombineErrors(s.wal.Sync(), s.wal.Close())
}
