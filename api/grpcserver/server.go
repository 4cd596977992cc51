package grpcserver

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bookie/api/pb"
	"bookie/domain/betting"
	"bookie/service"
)

type Server struct {
	pb.UnimplementedSettlementServer
	svc *service.BettingService
	log *zap.Logger
}

var _ pb.SettlementServer = (*Server)(nil)

func NewServer(svc *service.BettingService, log *zap.Logger) *Server {
	return &Server{svc: svc, log: log.Named("grpc")}
}

func (s *Server) CreateMarket(ctx context.Context, req *pb.CreateMarketRequest) (*pb.CommandReply, error) {
	return reply(s.svc.CreateMarket(ctx, service.CreateMarket{
		Market: betting.MarketID(req.Market),
		Asset:  betting.AssetID(req.Asset),
	}))
}

func (s *Server) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.CommandReply, error) {
	return reply(s.svc.Deposit(ctx, service.Deposit{
		Account: betting.AccountID(req.Account),
		Asset:   betting.AssetID(req.Asset),
		Amount:  req.Amount,
	}))
}

func (s *Server) PlaceBet(ctx context.Context, req *pb.PlaceBetRequest) (*pb.CommandReply, error) {
	side, err := toSide(req.Side)
	if err != nil {
		return nil, toStatus(err)
	}
	m, err := ParseMultiplier(req.Multiplier)
	if err != nil {
		return nil, toStatus(err)
	}
	return reply(s.svc.PlaceBet(ctx, service.PlaceBet{
		Bettor:     betting.AccountID(req.Bettor),
		Market:     betting.MarketID(req.Market),
		Side:       side,
		Multiplier: m,
		Stake:      req.Stake,
	}))
}

func (s *Server) CancelBet(ctx context.Context, req *pb.CancelBetRequest) (*pb.CommandReply, error) {
	return reply(s.svc.CancelBet(ctx, service.CancelBet{
		Bettor: betting.AccountID(req.Bettor),
		Bet:    betting.BetID(req.BetId),
	}))
}

func (s *Server) CancelAllBets(ctx context.Context, req *pb.CancelAllBetsRequest) (*pb.CommandReply, error) {
	return reply(s.svc.CancelAllBets(ctx, service.CancelAllBets{
		Market: betting.MarketID(req.Market),
	}))
}

func (s *Server) ResolveMarket(ctx context.Context, req *pb.ResolveMarketRequest) (*pb.CommandReply, error) {
	r, err := toResolution(req.Resolution)
	if err != nil {
		return nil, toStatus(err)
	}
	return reply(s.svc.ResolveMarket(ctx, service.ResolveMarket{
		Market:     betting.MarketID(req.Market),
		Resolution: r,
	}))
}

func (s *Server) Balance(_ context.Context, req *pb.BalanceRequest) (*pb.BalanceReply, error) {
	amount := s.svc.Balance(betting.AccountID(req.Account), betting.AssetID(req.Asset))
	return &pb.BalanceReply{Amount: amount}, nil
}

func (s *Server) GetBet(_ context.Context, req *pb.GetBetRequest) (*pb.BetReply, error) {
	b, ok := s.svc.Bet(betting.BetID(req.BetId))
	if !ok {
		return nil, status.Errorf(codes.NotFound, "bet %d is not resting", req.BetId)
	}
	return &pb.BetReply{
		BetId:      uint64(b.ID),
		Bettor:     uint64(b.Bettor),
		Market:     uint64(b.Market),
		Side:       fromSide(b.Side),
		Multiplier: FormatMultiplier(b.Multiplier),
		Stake:      b.Stake,
		FeeReserve: b.FeeReserve,
	}, nil
}

func (s *Server) Position(_ context.Context, req *pb.PositionRequest) (*pb.PositionReply, error) {
	p, ok := s.svc.Position(betting.AccountID(req.Bettor), betting.MarketID(req.Market))
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no position for %d in market %d", req.Bettor, req.Market)
	}
	return &pb.PositionReply{
		PayIfPayout:      p.PayIfPayoutCondition,
		PayIfNotPayout:   p.PayIfNotPayoutCondition,
		PayIfCanceled:    p.PayIfCanceled,
		PayIfNotCanceled: p.PayIfNotCanceled,
		FeesCollected:    p.FeesCollected,
	}, nil
}

func (s *Server) Book(_ context.Context, req *pb.BookRequest) (*pb.BookReply, error) {
	side, err := toSide(req.Side)
	if err != nil {
		return nil, toStatus(err)
	}
	levels, err := s.svc.BookDepth(betting.MarketID(req.Market), side, int(req.Limit))
	if err != nil {
		return nil, toStatus(err)
	}
	out := &pb.BookReply{Levels: make([]*pb.BookLevel, 0, len(levels))}
	for _, l := range levels {
		out.Levels = append(out.Levels, &pb.BookLevel{
			Multiplier: FormatMultiplier(l.Multiplier),
			TotalStake: l.TotalStake,
			Bets:       int32(l.Bets),
		})
	}
	return out, nil
}

func reply(res service.Result, err error) (*pb.CommandReply, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	out := &pb.CommandReply{
		Seq:    res.Seq,
		BetId:  uint64(res.BetID),
		Filled: res.Filled,
		Events: make([]*pb.Event, 0, len(res.Events)),
	}
	for _, ev := range res.Events {
		out.Events = append(out.Events, fromEvent(ev))
	}
	return out, nil
}

func fromEvent(ev betting.Event) *pb.Event {
	out := &pb.Event{
		Type:       string(ev.Type),
		Bettor:     uint64(ev.Bettor),
		BetId:      uint64(ev.BetID),
		Market:     uint64(ev.Market),
		Asset:      uint64(ev.Asset),
		Side:       fromSide(ev.Side),
		Amount:     ev.Amount,
		Fee:        ev.Fee,
		Guaranteed: ev.Guaranteed,
		Resolution: pb.Resolution(ev.Resolution),
	}
	if ev.Multiplier != 0 {
		out.Multiplier = FormatMultiplier(ev.Multiplier)
	}
	return out
}

func toSide(s pb.Side) (betting.BetType, error) {
	switch s {
	case pb.Side_BACK:
		return betting.Back, nil
	case pb.Side_LAY:
		return betting.Lay, nil
	default:
		return 0, errors.Wrapf(betting.ErrInvalidSide, "%d", int32(s))
	}
}

func fromSide(t betting.BetType) pb.Side {
	if t == betting.Lay {
		return pb.Side_LAY
	}
	return pb.Side_BACK
}

func toResolution(r pb.Resolution) (betting.Resolution, error) {
	switch r {
	case pb.Resolution_WIN:
		return betting.Win, nil
	case pb.Resolution_NOT_WIN:
		return betting.NotWin, nil
	case pb.Resolution_CANCEL:
		return betting.Cancel, nil
	default:
		return 0, errors.Wrapf(betting.ErrInvalidResolution, "%d", int32(r))
	}
}

// ParseMultiplier converts decimal odds such as "2.5" to fixed point.
// Odds finer than the engine's precision are rejected, not rounded.
func ParseMultiplier(s string) (betting.Multiplier, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(betting.ErrInvalidMultiplier, "%q", s)
	}
	scaled := d.Mul(decimal.NewFromInt(betting.OddsPrecision))
	if !scaled.IsInteger() || scaled.Sign() <= 0 || scaled.GreaterThan(decimal.NewFromInt(math.MaxUint32)) {
		return 0, errors.Wrapf(betting.ErrInvalidMultiplier, "%q", s)
	}
	return betting.Multiplier(scaled.IntPart()), nil
}

func FormatMultiplier(m betting.Multiplier) string {
	return decimal.New(int64(m), 0).Div(decimal.NewFromInt(betting.OddsPrecision)).String()
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.IsAny(err, betting.ErrMarketNotFound, betting.ErrBetNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.IsAny(err, betting.ErrMarketExists, betting.ErrBetExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, betting.ErrNotBetOwner):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, betting.ErrInsufficientBalance):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.IsAny(err,
		betting.ErrInvalidStake, betting.ErrInvalidAmount, betting.ErrInvalidSide,
		betting.ErrInvalidMultiplier, betting.ErrInvalidResolution):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
