package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"bookie/domain/betting"
	"bookie/infra/metrics"
	"bookie/infra/sequence"
	entrywal "bookie/infra/wal/entry"
	exitwal "bookie/infra/wal/exit"
	"bookie/jobs/broadcaster"
	"bookie/snapshot"
)

const (
	market     betting.MarketID  = 1
	asset      betting.AssetID   = 7
	feeAccount betting.AccountID = 99
)

type node struct {
	svc     *BettingService
	outbox  *exitwal.Outbox
	metrics *metrics.Metrics
	dir     string
}

// startNode opens a service over dir. Calling it again on the same dir
// after stop simulates a restart.
func startNode(t *testing.T, dir string) *node {
	t.Helper()
	params := betting.DefaultParams()
	params.FeeAccount = feeAccount
	ledger := betting.NewAccounts()
	engine := betting.NewEngine(params, ledger)

	wal, err := entrywal.Open(entrywal.Config{
		Dir:            filepath.Join(dir, "wal"),
		SegmentSize:    1 << 20,
		SyncEveryWrite: true,
	})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	ob, err := exitwal.Open(filepath.Join(dir, "outbox"))
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	m := metrics.New()
	return &node{
		svc:     New(engine, ledger, sequence.New(0), wal, ob, m, zap.NewNop()),
		outbox:  ob,
		metrics: m,
		dir:     dir,
	}
}

func (n *node) stop(t *testing.T) {
	t.Helper()
	if err := n.svc.Close(); err != nil {
		t.Fatalf("close service: %v", err)
	}
	if err := n.outbox.Close(); err != nil {
		t.Fatalf("close outbox: %v", err)
	}
}

func (n *node) recover(t *testing.T) Recovery {
	t.Helper()
	rec, err := n.svc.Recover(filepath.Join(n.dir, "snapshots"), filepath.Join(n.dir, "wal"))
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	return rec
}

// must fails the test if a command errors: must(t)(svc.PlaceBet(...)).
func must(t *testing.T) func(Result, error) Result {
	return func(res Result, err error) Result {
		t.Helper()
		if err != nil {
			t.Fatalf("command failed: %v", err)
		}
		return res
	}
}

// seed creates the market and funds bettors 1 and 2 with 1000 each.
func seed(t *testing.T, s *BettingService) {
	t.Helper()
	ctx := context.Background()
	must(t)(s.CreateMarket(ctx, CreateMarket{Market: market, Asset: asset}))
	must(t)(s.Deposit(ctx, Deposit{Account: 1, Asset: asset, Amount: 1000}))
	must(t)(s.Deposit(ctx, Deposit{Account: 2, Asset: asset, Amount: 1000}))
}

func pendingEvents(t *testing.T, o *exitwal.Outbox) int {
	t.Helper()
	counts, err := o.Count()
	if err != nil {
		t.Fatal(err)
	}
	return counts[exitwal.StateNew]
}

func TestMatchAndResolve(t *testing.T) {
	n := startNode(t, t.TempDir())
	defer n.stop(t)
	ctx := context.Background()
	seed(t, n.svc)

	back := must(t)(n.svc.PlaceBet(ctx, PlaceBet{Bettor: 1, Market: market, Side: betting.Back, Multiplier: 20000, Stake: 100}))
	if back.BetID != betting.BetID(back.Seq) || back.Seq != 4 {
		t.Fatalf("bet id %d, seq %d", back.BetID, back.Seq)
	}
	if back.Filled {
		t.Fatal("first bet cannot fill")
	}

	lay := must(t)(n.svc.PlaceBet(ctx, PlaceBet{Bettor: 2, Market: market, Side: betting.Lay, Multiplier: 20000, Stake: 100}))
	if !lay.Filled || len(lay.Events) != 3 {
		t.Fatalf("lay result %+v", lay)
	}
	if _, ok := n.svc.Bet(back.BetID); ok {
		t.Fatal("filled maker still resting")
	}

	pos, ok := n.svc.Position(1, market)
	if !ok || pos.PayIfPayoutCondition != 200 || pos.FeesCollected != 2 {
		t.Fatalf("position %+v", pos)
	}

	must(t)(n.svc.ResolveMarket(ctx, ResolveMarket{Market: market, Resolution: betting.Win}))

	if got := n.svc.Balance(1, asset); got != 1098 {
		t.Fatalf("winner balance %d, want 1098", got)
	}
	if got := n.svc.Balance(2, asset); got != 898 {
		t.Fatalf("loser balance %d, want 898", got)
	}
	if got := n.svc.Balance(feeAccount, asset); got != 4 {
		t.Fatalf("fee account %d, want 4", got)
	}
	if _, ok := n.svc.Market(market); ok {
		t.Fatal("resolved market still open")
	}

	// bet_placed, bet_placed, 2x bet_matched, market_resolved
	if got := pendingEvents(t, n.outbox); got != 5 {
		t.Fatalf("outbox holds %d events, want 5", got)
	}
	if got := testutil.ToFloat64(n.metrics.Fills); got != 2 {
		t.Fatalf("fills metric %v", got)
	}
	if got := testutil.ToFloat64(n.metrics.FeesCollected); got != 4 {
		t.Fatalf("fees metric %v", got)
	}
}

func TestRejectedCommandConsumesSequence(t *testing.T) {
	n := startNode(t, t.TempDir())
	defer n.stop(t)
	ctx := context.Background()
	seed(t, n.svc)

	res, err := n.svc.PlaceBet(ctx, PlaceBet{Bettor: 3, Market: market, Side: betting.Back, Multiplier: 20000, Stake: 100})
	if !errors.Is(err, betting.ErrInsufficientBalance) {
		t.Fatalf("err = %v", err)
	}
	if res.Seq != 4 || n.svc.LastSeq() != 4 {
		t.Fatalf("seq %d, last %d", res.Seq, n.svc.LastSeq())
	}
	if got := testutil.ToFloat64(n.metrics.Commands.WithLabelValues("place_bet", "rejected")); got != 1 {
		t.Fatalf("rejected metric %v", got)
	}

	_, err = n.svc.CancelBet(ctx, CancelBet{Bettor: 1, Bet: 42})
	if !errors.Is(err, betting.ErrBetNotFound) {
		t.Fatalf("cancel unknown bet: %v", err)
	}
}

func TestCanceledContextIsNotLogged(t *testing.T) {
	n := startNode(t, t.TempDir())
	defer n.stop(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := n.svc.CreateMarket(ctx, CreateMarket{Market: market, Asset: asset}); err == nil {
		t.Fatal("expected context error")
	}
	if n.svc.LastSeq() != 0 {
		t.Fatalf("sequence advanced to %d", n.svc.LastSeq())
	}
}

func runScenario(t *testing.T, s *BettingService) {
	t.Helper()
	ctx := context.Background()
	seed(t, s)
	must(t)(s.PlaceBet(ctx, PlaceBet{Bettor: 1, Market: market, Side: betting.Back, Multiplier: 30000, Stake: 300}))
	must(t)(s.PlaceBet(ctx, PlaceBet{Bettor: 2, Market: market, Side: betting.Lay, Multiplier: 30000, Stake: 200}))
	// rejected: no such market
	s.PlaceBet(ctx, PlaceBet{Bettor: 2, Market: 5, Side: betting.Lay, Multiplier: 30000, Stake: 10})
	must(t)(s.PlaceBet(ctx, PlaceBet{Bettor: 2, Market: market, Side: betting.Back, Multiplier: 15000, Stake: 50}))
}

type view struct {
	balances []int64
	export   betting.State
	last     uint64
}

func capture(s *BettingService) view {
	return view{
		balances: []int64{s.Balance(1, asset), s.Balance(2, asset), s.Balance(feeAccount, asset)},
		export:   s.engine.Export(),
		last:     s.LastSeq(),
	}
}

func sameView(t *testing.T, got, want view) {
	t.Helper()
	for i := range want.balances {
		if got.balances[i] != want.balances[i] {
			t.Fatalf("balances %v, want %v", got.balances, want.balances)
		}
	}
	if got.last != want.last {
		t.Fatalf("last seq %d, want %d", got.last, want.last)
	}
	if len(got.export.Bets) != len(want.export.Bets) || len(got.export.Positions) != len(want.export.Positions) {
		t.Fatalf("state %+v, want %+v", got.export, want.export)
	}
	for i := range want.export.Bets {
		if got.export.Bets[i] != want.export.Bets[i] {
			t.Fatalf("bet %d: %+v, want %+v", i, got.export.Bets[i], want.export.Bets[i])
		}
	}
	for i := range want.export.Positions {
		if got.export.Positions[i] != want.export.Positions[i] {
			t.Fatalf("position %d: %+v, want %+v", i, got.export.Positions[i], want.export.Positions[i])
		}
	}
}

func TestRecoverFromLogOnly(t *testing.T) {
	dir := t.TempDir()
	n := startNode(t, dir)
	runScenario(t, n.svc)
	want := capture(n.svc)
	n.stop(t)

	n = startNode(t, dir)
	defer n.stop(t)
	rec := n.recover(t)
	if rec.SnapshotSeq != 0 || rec.Replayed != 7 || rec.Rejected != 1 {
		t.Fatalf("recovery %+v", rec)
	}
	sameView(t, capture(n.svc), want)

	res := must(t)(n.svc.PlaceBet(context.Background(),
		PlaceBet{Bettor: 1, Market: market, Side: betting.Lay, Multiplier: 12000, Stake: 10}))
	if res.BetID != betting.BetID(want.last+1) {
		t.Fatalf("bet id after recovery %d, want %d", res.BetID, want.last+1)
	}
}

func TestRecoverFromSnapshotAndLog(t *testing.T) {
	dir := t.TempDir()
	n := startNode(t, dir)
	ctx := context.Background()
	seed(t, n.svc)

	w := &snapshot.Writer{Dir: filepath.Join(dir, "snapshots"), Keep: 2}
	if _, err := n.svc.TakeSnapshot(ctx, w, nil); err != nil {
		t.Fatal(err)
	}
	must(t)(n.svc.PlaceBet(ctx, PlaceBet{Bettor: 1, Market: market, Side: betting.Back, Multiplier: 25000, Stake: 400}))
	must(t)(n.svc.PlaceBet(ctx, PlaceBet{Bettor: 2, Market: market, Side: betting.Lay, Multiplier: 25000, Stake: 100}))
	want := capture(n.svc)
	n.stop(t)

	n = startNode(t, dir)
	defer n.stop(t)
	rec := n.recover(t)
	if rec.SnapshotSeq != 3 || rec.Replayed != 2 || rec.LastSeq != 5 {
		t.Fatalf("recovery %+v", rec)
	}
	sameView(t, capture(n.svc), want)
}

func TestRecoverRestoresMissingEventsOnly(t *testing.T) {
	dir := t.TempDir()
	n := startNode(t, dir)
	seed(t, n.svc)
	// deposits and market creation emit no events
	must(t)(n.svc.PlaceBet(context.Background(),
		PlaceBet{Bettor: 1, Market: market, Side: betting.Back, Multiplier: 20000, Stake: 100}))
	if err := n.outbox.UpdateState(4, 0, exitwal.StateAcked, 0); err != nil {
		t.Fatal(err)
	}
	n.stop(t)

	n = startNode(t, dir)
	defer n.stop(t)
	n.recover(t)
	counts, err := n.outbox.Count()
	if err != nil {
		t.Fatal(err)
	}
	if counts[exitwal.StateAcked] != 1 || counts[exitwal.StateNew] != 0 {
		t.Fatalf("outbox after recovery %v", counts)
	}
}

func TestRecoverRejectsMismatchedParams(t *testing.T) {
	dir := t.TempDir()
	n := startNode(t, dir)
	seed(t, n.svc)
	w := &snapshot.Writer{Dir: filepath.Join(dir, "snapshots")}
	if _, err := n.svc.TakeSnapshot(context.Background(), w, nil); err != nil {
		t.Fatal(err)
	}
	n.stop(t)

	n = startNode(t, dir)
	defer n.stop(t)
	n.svc.engine = betting.NewEngine(betting.Params{
		PercentFee:    1,
		MinMultiplier: betting.DefaultMinMultiplier,
		MaxMultiplier: betting.DefaultMaxMultiplier,
	}, n.svc.ledger)
	if _, err := n.svc.Recover(filepath.Join(dir, "snapshots"), filepath.Join(dir, "wal")); err == nil {
		t.Fatal("expected params mismatch")
	}
}

type fakeArchiver struct{ paths []string }

func (f *fakeArchiver) Archive(_ context.Context, local string) (string, error) {
	f.paths = append(f.paths, local)
	return "snapshots/" + filepath.Base(local), nil
}

func TestTakeSnapshotArchives(t *testing.T) {
	dir := t.TempDir()
	n := startNode(t, dir)
	defer n.stop(t)
	seed(t, n.svc)

	arch := &fakeArchiver{}
	w := &snapshot.Writer{Dir: filepath.Join(dir, "snapshots")}
	path, err := n.svc.TakeSnapshot(context.Background(), w, arch)
	if err != nil {
		t.Fatal(err)
	}
	if len(arch.paths) != 1 || arch.paths[0] != path {
		t.Fatalf("archived %v, wrote %s", arch.paths, path)
	}

	snap, err := snapshot.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Seq != 3 || len(snap.State.Markets) != 1 || len(snap.Balances) != 2 {
		t.Fatalf("snapshot %+v", snap)
	}
}

type countingSink struct{ got int }

func (s *countingSink) Name() string { return "count" }

func (s *countingSink) Publish(_ context.Context, envs []betting.Envelope) error {
	s.got += len(envs)
	return nil
}

func (s *countingSink) Close() error { return nil }

func deliver(t *testing.T, n *node) int {
	t.Helper()
	sink := &countingSink{}
	b := broadcaster.New(n.outbox, []broadcaster.Sink{sink}, broadcaster.Config{}, zap.NewNop(), n.metrics)
	if _, err := b.Flush(context.Background()); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return sink.got
}

func TestRestartDoesNotResendDeliveredEvents(t *testing.T) {
	dir := t.TempDir()
	n := startNode(t, dir)
	ctx := context.Background()
	seed(t, n.svc)
	must(t)(n.svc.PlaceBet(ctx, PlaceBet{Bettor: 1, Market: market, Side: betting.Back, Multiplier: 20000, Stake: 100}))
	must(t)(n.svc.PlaceBet(ctx, PlaceBet{Bettor: 2, Market: market, Side: betting.Lay, Multiplier: 20000, Stake: 100}))
	if got := deliver(t, n); got != 4 {
		t.Fatalf("delivered %d events, want 4", got)
	}
	n.stop(t)

	n = startNode(t, dir)
	defer n.stop(t)
	n.recover(t)
	if got := pendingEvents(t, n.outbox); got != 0 {
		t.Fatalf("%d events queued again after restart", got)
	}
	if got := deliver(t, n); got != 0 {
		t.Fatalf("resent %d events after restart", got)
	}
}

func TestSnapshotPurgesDeliveredEventsItCovers(t *testing.T) {
	dir := t.TempDir()
	n := startNode(t, dir)
	ctx := context.Background()
	seed(t, n.svc)
	must(t)(n.svc.PlaceBet(ctx, PlaceBet{Bettor: 1, Market: market, Side: betting.Back, Multiplier: 20000, Stake: 100}))
	deliver(t, n)

	w := &snapshot.Writer{Dir: filepath.Join(dir, "snapshots")}
	if _, err := n.svc.TakeSnapshot(ctx, w, nil); err != nil {
		t.Fatal(err)
	}
	counts, _ := n.outbox.Count()
	if counts[exitwal.StateAcked] != 0 {
		t.Fatalf("acked entries left after snapshot: %v", counts)
	}

	// Delivered after the snapshot: kept so replay can recognise them.
	must(t)(n.svc.PlaceBet(ctx, PlaceBet{Bettor: 2, Market: market, Side: betting.Lay, Multiplier: 20000, Stake: 100}))
	if got := deliver(t, n); got != 3 {
		t.Fatalf("delivered %d events, want 3", got)
	}
	n.stop(t)

	n = startNode(t, dir)
	defer n.stop(t)
	rec := n.recover(t)
	if rec.SnapshotSeq != 4 || rec.Replayed != 1 {
		t.Fatalf("recovery %+v", rec)
	}
	counts, _ = n.outbox.Count()
	if counts[exitwal.StateAcked] != 3 || counts[exitwal.StateNew] != 0 {
		t.Fatalf("outbox after recovery %v", counts)
	}
}
