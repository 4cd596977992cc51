package service

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	entrywal "bookie/infra/wal/entry"
	"bookie/snapshot"
)

// Recovery summarizes what Recover rebuilt.
type Recovery struct {
	SnapshotSeq uint64
	Replayed    int
	Rejected    int
	LastSeq     uint64
}

// Recover rebuilds engine state from the newest snapshot in snapDir and the
// command log in walDir. It must run before the service accepts commands.
//
// Replayed events are written to the outbox only where missing, so
// anything lost between the log append and the outbox append is restored.
// Delivered entries are not resent: their ACKED keys stay in the outbox
// until a snapshot at or above their sequence exists, and replay never
// goes below the snapshot.
func (s *BettingService) Recover(snapDir, walDir string) (Recovery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec Recovery
	snap, err := snapshot.LoadLatest(snapDir)
	if err != nil {
		return rec, errors.Wrap(err, "load snapshot")
	}
	if snap != nil {
		if snap.Params != s.engine.Params() {
			return rec, errors.Newf("snapshot %d was taken with params %+v, engine has %+v",
				snap.Seq, snap.Params, s.engine.Params())
		}
		if err := s.engine.Restore(snap.State); err != nil {
			return rec, errors.Wrapf(err, "restore snapshot %d", snap.Seq)
		}
		s.ledger.Import(snap.Balances)
		s.seq.Observe(snap.Seq)
		rec.SnapshotSeq = snap.Seq
	}

	last, err := entrywal.Replay(walDir, rec.SnapshotSeq, func(r *entrywal.Record) error {
		cmd, err := DecodeCommand(r.Type, r.Data)
		if err != nil {
			return errors.Wrapf(err, "record %d", r.Seq)
		}
		rec.Replayed++

		res, err := s.apply(r.Seq, cmd)
		if err != nil {
			rec.Rejected++
			if errors.IsAssertionFailure(err) {
				s.log.Warn("replayed command faulted",
					zap.Uint64("seq", r.Seq), zap.Stringer("command", r.Type), zap.Error(err))
			}
			return nil
		}
		return s.store(r.Seq, res.Events, true)
	})
	if err != nil {
		return rec, errors.Wrap(err, "replay command log")
	}

	s.seq.Observe(last)
	rec.LastSeq = s.seq.Current()

	s.log.Info("recovery complete",
		zap.Uint64("snapshot_seq", rec.SnapshotSeq),
		zap.Int("replayed", rec.Replayed),
		zap.Int("rejected", rec.Rejected),
		zap.Uint64("last_seq", rec.LastSeq),
	)
	return rec, nil
}
