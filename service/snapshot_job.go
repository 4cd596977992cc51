package service

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"bookie/snapshot"
)

// Archiver copies a finished snapshot file somewhere durable.
type Archiver interface {
	Archive(ctx context.Context, local string) (string, error)
}

// TakeSnapshot writes the current state, then trims the command log and
// the delivered outbox entries it covers. With a non-nil archiver the file
// is also uploaded.
func (s *BettingService) TakeSnapshot(ctx context.Context, w *snapshot.Writer, archiver Archiver) (string, error) {
	s.mu.Lock()
	snap := &snapshot.Snapshot{
		Seq:      s.seq.Current(),
		Created:  time.Now().UTC(),
		Params:   s.engine.Params(),
		State:    s.engine.Export(),
		Balances: s.ledger.Export(),
	}
	s.mu.Unlock()

	path, err := w.Write(snap)
	if err != nil {
		return "", errors.Wrapf(err, "write snapshot %d", snap.Seq)
	}

	removed, err := s.wal.TruncateBefore(snap.Seq)
	if err != nil {
		return path, errors.Wrap(err, "truncate command log")
	}
	purged, err := s.outbox.PurgeAcked(snap.Seq)
	if err != nil {
		return path, errors.Wrap(err, "purge delivered events")
	}

	if archiver != nil {
		key, err := archiver.Archive(ctx, path)
		if err != nil {
			return path, err
		}
		s.log.Debug("snapshot archived", zap.String("key", key))
	}

	s.log.Info("snapshot written",
		zap.Uint64("seq", snap.Seq),
		zap.String("path", path),
		zap.Int("segments_removed", removed),
		zap.Int("events_purged", purged),
	)
	return path, nil
}

// RunSnapshots takes a snapshot every interval until ctx is done, and a
// final one on the way out.
func (s *BettingService) RunSnapshots(ctx context.Context, w *snapshot.Writer, archiver Archiver, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	var last uint64
	for {
		select {
		case <-ctx.Done():
			if s.seq.Current() != last {
				if _, err := s.TakeSnapshot(context.WithoutCancel(ctx), w, nil); err != nil {
					s.log.Warn("final snapshot failed", zap.Error(err))
				}
			}
			return nil
		case <-t.C:
			if s.seq.Current() == last {
				continue
			}
			if _, err := s.TakeSnapshot(ctx, w, archiver); err != nil {
				s.log.Warn("snapshot failed", zap.Error(err))
				continue
			}
			last = s.seq.Current()
		}
	}
}
