package grpcserver

import (
	"context"
	"net"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"bookie/api/pb"
	"bookie/domain/betting"
	"bookie/infra/sequence"
	entrywal "bookie/infra/wal/entry"
	exitwal "bookie/infra/wal/exit"
	"bookie/service"
)

func newClient(t *testing.T) pb.SettlementClient {
	t.Helper()
	dir := t.TempDir()

	ledger := betting.NewAccounts()
	engine := betting.NewEngine(betting.DefaultParams(), ledger)
	wal, err := entrywal.Open(entrywal.Config{Dir: filepath.Join(dir, "wal"), SegmentSize: 1 << 20})
	if err != nil {
		t.Fatal(err)
	}
	ob, err := exitwal.Open(filepath.Join(dir, "outbox"))
	if err != nil {
		t.Fatal(err)
	}
	svc := service.New(engine, ledger, sequence.New(0), wal, ob, nil, zap.NewNop())

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(UnaryLogger(zap.NewNop())))
	pb.RegisterSettlementServer(srv, NewServer(svc, zap.NewNop()))
	go srv.Serve(lis)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		conn.Close()
		srv.Stop()
		svc.Close()
		ob.Close()
	})
	return pb.NewSettlementClient(conn)
}

func TestPlaceAndMatchOverGRPC(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	if _, err := c.CreateMarket(ctx, &pb.CreateMarketRequest{Market: 1, Asset: 7}); err != nil {
		t.Fatal(err)
	}
	for _, acct := range []uint64{1, 2} {
		if _, err := c.Deposit(ctx, &pb.DepositRequest{Account: acct, Asset: 7, Amount: 1000}); err != nil {
			t.Fatal(err)
		}
	}

	back, err := c.PlaceBet(ctx, &pb.PlaceBetRequest{Bettor: 1, Market: 1, Side: pb.Side_BACK, Multiplier: "2.5", Stake: 100})
	if err != nil {
		t.Fatal(err)
	}
	if back.BetId != 4 || back.Filled || len(back.Events) != 1 {
		t.Fatalf("back reply %+v", back)
	}

	bet, err := c.GetBet(ctx, &pb.GetBetRequest{BetId: back.BetId})
	if err != nil {
		t.Fatal(err)
	}
	if bet.Multiplier != "2.5" || bet.Side != pb.Side_BACK || bet.Stake != 100 {
		t.Fatalf("bet %+v", bet)
	}

	book, err := c.Book(ctx, &pb.BookRequest{Market: 1, Side: pb.Side_BACK, Limit: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(book.Levels) != 1 || book.Levels[0].TotalStake != 100 {
		t.Fatalf("book %+v", book)
	}

	lay, err := c.PlaceBet(ctx, &pb.PlaceBetRequest{Bettor: 2, Market: 1, Side: pb.Side_LAY, Multiplier: "2.5", Stake: 150})
	if err != nil {
		t.Fatal(err)
	}
	if !lay.Filled {
		t.Fatalf("lay reply %+v", lay)
	}
	if lay.Events[1].Type != string(betting.EventBetMatched) || lay.Events[1].Side != pb.Side_LAY || lay.Events[1].Multiplier != "2.5" {
		t.Fatalf("events %+v", lay.Events)
	}

	pos, err := c.Position(ctx, &pb.PositionRequest{Bettor: 2, Market: 1})
	if err != nil {
		t.Fatal(err)
	}
	if pos.PayIfNotPayout != 250 {
		t.Fatalf("position %+v", pos)
	}

	if _, err := c.ResolveMarket(ctx, &pb.ResolveMarketRequest{Market: 1, Resolution: pb.Resolution_NOT_WIN}); err != nil {
		t.Fatal(err)
	}
	bal, err := c.Balance(ctx, &pb.BalanceRequest{Account: 2, Asset: 7})
	if err != nil {
		t.Fatal(err)
	}
	// 1000 - 150 stake - 3 fee + 250 payout
	if bal.Amount != 1097 {
		t.Fatalf("balance %d", bal.Amount)
	}
}

func TestErrorCodes(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()
	c.CreateMarket(ctx, &pb.CreateMarketRequest{Market: 1, Asset: 7})

	cases := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{"duplicate market", func() error {
			_, err := c.CreateMarket(ctx, &pb.CreateMarketRequest{Market: 1, Asset: 7})
			return err
		}, codes.AlreadyExists},
		{"unknown market", func() error {
			_, err := c.CancelAllBets(ctx, &pb.CancelAllBetsRequest{Market: 9})
			return err
		}, codes.NotFound},
		{"bad side", func() error {
			_, err := c.PlaceBet(ctx, &pb.PlaceBetRequest{Bettor: 1, Market: 1, Side: pb.Side(7), Multiplier: "2", Stake: 1})
			return err
		}, codes.InvalidArgument},
		{"too precise", func() error {
			_, err := c.PlaceBet(ctx, &pb.PlaceBetRequest{Bettor: 1, Market: 1, Side: pb.Side_BACK, Multiplier: "2.00001", Stake: 1})
			return err
		}, codes.InvalidArgument},
		{"unfunded", func() error {
			_, err := c.PlaceBet(ctx, &pb.PlaceBetRequest{Bettor: 1, Market: 1, Side: pb.Side_BACK, Multiplier: "2", Stake: 10})
			return err
		}, codes.FailedPrecondition},
		{"no bet", func() error {
			_, err := c.GetBet(ctx, &pb.GetBetRequest{BetId: 77})
			return err
		}, codes.NotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := status.Code(tc.call()); got != tc.want {
				t.Fatalf("code %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUnknownEnumValues(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()
	c.CreateMarket(ctx, &pb.CreateMarketRequest{Market: 1, Asset: 7})

	_, err := c.ResolveMarket(ctx, &pb.ResolveMarketRequest{Market: 1, Resolution: pb.Resolution(9)})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Fatalf("resolve with unknown resolution: %v", err)
	}
	// 256 would wrap to back if it were narrowed without a check.
	_, err = c.Book(ctx, &pb.BookRequest{Market: 1, Side: pb.Side(256)})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Fatalf("book with unknown side: %v", err)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	c := newClient(t)
	ctx := metadata.AppendToOutgoingContext(context.Background(), requestIDHeader, "abc-123")

	var header metadata.MD
	if _, err := c.Balance(ctx, &pb.BalanceRequest{Account: 1, Asset: 1}, grpc.Header(&header)); err != nil {
		t.Fatal(err)
	}
	if got := header.Get(requestIDHeader); len(got) != 1 || got[0] != "abc-123" {
		t.Fatalf("header %v", header)
	}
}

func TestMultiplierText(t *testing.T) {
	for in, want := range map[string]betting.Multiplier{"2.5": 25000, "1.0001": 10001, "1000": 10000000} {
		got, err := ParseMultiplier(in)
		if err != nil || got != want {
			t.Fatalf("ParseMultiplier(%q) = %d, %v", in, got, err)
		}
		if back := FormatMultiplier(got); back != in {
			t.Fatalf("FormatMultiplier(%d) = %q, want %q", got, back, in)
		}
	}
	for _, bad := range []string{"", "abc", "-2", "0", "1e12"} {
		if _, err := ParseMultiplier(bad); err == nil {
			t.Fatalf("ParseMultiplier(%q) accepted", bad)
		}
	}
}
