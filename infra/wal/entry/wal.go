package entry

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"bookie/infra/memory"
)

// Frame: [type:1][seq:8][time:8][len:4][payload][crc:4], big endian.
// The CRC covers header and payload.
const headerSize = 1 + 8 + 8 + 4

type Config struct {
	Dir             string
	SegmentSize     int64
	SegmentDuration time.Duration
	// SyncEveryWrite fsyncs after each append.
	SyncEveryWrite bool
	Logger         *zap.Logger
}

// WAL is the command log. Commands are appended before they are applied.
type WAL struct {
	mu         sync.Mutex
	dir        string
	segSize    int64
	segDur     time.Duration
	syncWrites bool
	current    *segment
	lastRotate time.Time
	log        *zap.Logger
	// broken is set when a failed append could not be rolled back. The
	// segment may hold a record the caller was told failed, so no further
	// records are accepted.
	broken error
}

// Open resumes appending to the newest segment in cfg.Dir. A partial frame
// left at the end of that segment by a crash is cut off first, so new
// records are never written behind it.
func Open(cfg Config) (*WAL, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create wal dir %s", cfg.Dir)
	}

	files, err := listSegments(cfg.Dir)
	if err != nil {
		return nil, err
	}
	index := 0
	if n := len(files); n > 0 {
		newest := files[n-1]
		if index, err = segmentIndex(newest); err != nil {
			return nil, errors.Wrapf(err, "parse segment name %s", newest)
		}
		cut, err := truncateTornTail(newest)
		if err != nil {
			return nil, errors.Wrapf(err, "recover segment %s", filepath.Base(newest))
		}
		if cut > 0 {
			log.Warn("dropped torn wal tail",
				zap.String("segment", filepath.Base(newest)), zap.Int64("bytes", cut))
		}
	}

	seg, err := openSegment(cfg.Dir, index)
	if err != nil {
		return nil, errors.Wrap(err, "open wal segment")
	}

	return &WAL{
		dir:        cfg.Dir,
		segSize:    cfg.SegmentSize,
		segDur:     cfg.SegmentDuration,
		syncWrites: cfg.SyncEveryWrite,
		current:    seg,
		lastRotate: time.Now(),
		log:        log,
	}, nil
}

var frames = memory.NewBufferPool(512, 64<<10)

// appendFrame encodes r onto dst.
func appendFrame(dst []byte, r *Record) []byte {
	payloadLen := uint32(len(r.Data))
	start := len(dst)
	dst = slices.Grow(dst, headerSize+int(payloadLen)+4)
	dst = dst[:start+headerSize+int(payloadLen)+4]
	buf := dst[start:]

	buf[0] = byte(r.Type)
	binary.BigEndian.PutUint64(buf[1:9], r.Seq)
	binary.BigEndian.PutUint64(buf[9:17], uint64(r.Time))
	binary.BigEndian.PutUint32(buf[17:21], payloadLen)
	copy(buf[headerSize:], r.Data)

	end := headerSize + int(payloadLen)
	binary.BigEndian.PutUint32(buf[end:], crc32Sum(buf[:end]))
	return dst
}

// Append writes r to the active segment. A nil return means the record is
// in the log and will be replayed; on error nothing of it is left behind.
func (w *WAL) Append(r *Record) error {
	bp := frames.Get()
	frame := appendFrame((*bp)[:0], r)
	defer func() {
		*bp = frame[:0]
		frames.Put(bp)
	}()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.broken != nil {
		return w.broken
	}
	start := w.current.offset
	if err := w.current.append(frame); err != nil {
		return w.undo(start, errors.Wrapf(err, "append record %d", r.Seq))
	}
	if w.syncWrites {
		if err := w.current.sync(); err != nil {
			return w.undo(start, errors.Wrapf(err, "sync record %d", r.Seq))
		}
	}

	if w.current.offset >= w.segSize || (w.segDur > 0 && time.Since(w.lastRotate) >= w.segDur) {
		// The record is already logged. A failed rotation keeps the
		// current segment and is retried on the next append.
		if err := w.rotate(); err != nil {
			w.log.Error("wal rotation failed",
				zap.Int("segment", w.current.index), zap.Error(err))
		}
	}
	return nil
}

// undo cuts the active segment back to off after a failed append.
func (w *WAL) undo(off int64, cause error) error {
	if err := w.current.truncate(off); err != nil {
		w.broken = errors.CombineErrors(cause, errors.Wrap(err, "truncate partial record"))
		return w.broken
	}
	return cause
}

func (w *WAL) rotate() error {
	if err := w.current.sync(); err != nil {
		return errors.Wrap(err, "sync segment before rotate")
	}

	seg, err := openSegment(w.dir, w.current.index+1)
	if err != nil {
		return errors.Wrap(err, "open next wal segment")
	}
	_ = w.current.close()
	w.current = seg
	w.lastRotate = time.Now()
	return nil
}

// TruncateBefore deletes closed segments whose records all have a
// sequence <= seq. The active segment is never removed.
func (w *WAL) TruncateBefore(seq uint64) (int, error) {
	w.mu.Lock()
	active := w.current.index
	w.mu.Unlock()

	files, err := listSegments(w.dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, path := range files {
		idx, err := segmentIndex(path)
		if err != nil || idx >= active {
			continue
		}
		maxSeq, err := maxSeqInSegment(path)
		if err != nil {
			continue
		}
		if maxSeq <= seq {
			if err := os.Remove(path); err != nil {
				return removed, errors.Wrapf(err, "remove %s", filepath.Base(path))
			}
			removed++
		}
	}
	return removed, nil
}

func (w *WAL) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current.sync()
}

func (w *WAL) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.current.sync(); err != nil {
		return err
	}
	return w.current.close()
}
