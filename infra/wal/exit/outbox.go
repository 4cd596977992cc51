package exit

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

// State is the delivery state of an outbox entry.
type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Entry is one event waiting to be delivered, addressed by the command
// sequence that produced it and its index in that command's output.
type Entry struct {
	Seq         uint64
	Index       uint32
	State       State
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

const (
	keyPrefix  = "event/"
	metaHeader = 1 + 4 + 8
)

// value layout: [state:1][retries:4][lastAttempt:8][payload]
func encodeEntry(e Entry) []byte {
	buf := make([]byte, metaHeader+len(e.Payload))
	buf[0] = byte(e.State)
	binary.BigEndian.PutUint32(buf[1:5], e.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(e.LastAttempt))
	copy(buf[metaHeader:], e.Payload)
	return buf
}

func decodeEntry(seq uint64, idx uint32, b []byte) (Entry, error) {
	if len(b) < metaHeader {
		return Entry{}, errors.Newf("outbox entry %d/%d: short value (%d bytes)", seq, idx, len(b))
	}
	return Entry{
		Seq:         seq,
		Index:       idx,
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     append([]byte(nil), b[metaHeader:]...),
	}, nil
}

func keyFor(seq uint64, idx uint32) []byte {
	return []byte(fmt.Sprintf("%s%020d/%010d", keyPrefix, seq, idx))
}

func parseKey(b []byte) (uint64, uint32, error) {
	rest := string(b[len(keyPrefix):])
	seqPart, idxPart, ok := strings.Cut(rest, "/")
	if !ok {
		return 0, 0, errors.Newf("malformed outbox key %q", b)
	}
	seq, err := strconv.ParseUint(seqPart, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	idx, err := strconv.ParseUint(idxPart, 10, 32)
	return seq, uint32(idx), err
}

// Outbox is the durable hand-off between the engine and the broadcaster.
// Key order is emission order.
type Outbox struct {
	db *pebble.DB
}

func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open outbox %s", dir)
	}
	return &Outbox{db: db}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

func (o *Outbox) iter() (*pebble.Iterator, error) {
	return o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: []byte(keyPrefix + "~"),
	})
}

// Append stores the events of command seq as NEW entries in one synced
// batch. With skipExisting set, entries already present keep their state;
// replay uses this to restore events lost in a crash without resending
// delivered ones.
func (o *Outbox) Append(seq uint64, payloads [][]byte, skipExisting bool) error {
	if len(payloads) == 0 {
		return nil
	}
	b := o.db.NewBatch()
	defer b.Close()

	for i, p := range payloads {
		key := keyFor(seq, uint32(i))
		if skipExisting {
			_, closer, err := o.db.Get(key)
			if err == nil {
				_ = closer.Close()
				continue
			}
			if !errors.Is(err, pebble.ErrNotFound) {
				return errors.Wrapf(err, "outbox lookup %d/%d", seq, i)
			}
		}
		if err := b.Set(key, encodeEntry(Entry{State: StateNew, Payload: p}), nil); err != nil {
			return err
		}
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return errors.Wrap(err, "commit outbox batch")
	}
	return nil
}

// UpdateState records a delivery attempt, keeping the payload.
func (o *Outbox) UpdateState(seq uint64, idx uint32, state State, retries uint32) error {
	e, err := o.Get(seq, idx)
	if err != nil {
		return err
	}
	e.State = state
	e.Retries = retries
	e.LastAttempt = time.Now().UnixNano()
	return o.db.Set(keyFor(seq, idx), encodeEntry(e), pebble.Sync)
}

func (o *Outbox) Delete(seq uint64, idx uint32) error {
	return o.db.Delete(keyFor(seq, idx), pebble.Sync)
}

func (o *Outbox) Get(seq uint64, idx uint32) (Entry, error) {
	val, closer, err := o.db.Get(keyFor(seq, idx))
	if err != nil {
		return Entry{}, errors.Wrapf(err, "outbox entry %d/%d", seq, idx)
	}
	defer closer.Close()
	return decodeEntry(seq, idx, val)
}

// ScanByState calls fn for up to limit entries in state, oldest first.
// limit <= 0 means no limit.
func (o *Outbox) ScanByState(state State, limit int, fn func(Entry) error) error {
	it, err := o.iter()
	if err != nil {
		return err
	}
	defer it.Close()

	n := 0
	for it.First(); it.Valid(); it.Next() {
		val := it.Value()
		if len(val) == 0 || State(val[0]) != state {
			continue
		}
		seq, idx, err := parseKey(it.Key())
		if err != nil {
			return err
		}
		e, err := decodeEntry(seq, idx, val)
		if err != nil {
			return err
		}
		if err := fn(e); err != nil {
			return err
		}
		if n++; limit > 0 && n >= limit {
			break
		}
	}
	return it.Error()
}

// Count returns how many entries are in each state.
func (o *Outbox) Count() (map[State]int, error) {
	it, err := o.iter()
	if err != nil {
		return nil, err
	}
	defer it.Close()

	counts := make(map[State]int)
	for it.First(); it.Valid(); it.Next() {
		if val := it.Value(); len(val) > 0 {
			counts[State(val[0])]++
		}
	}
	return counts, it.Error()
}

// PurgeAcked deletes ACKED entries with a sequence <= upTo. Entries above
// the newest snapshot must stay: recovery replays those commands and uses
// the existing keys to tell delivered events from missing ones.
func (o *Outbox) PurgeAcked(upTo uint64) (int, error) {
	var keys [][]byte
	if err := o.ScanByState(StateAcked, 0, func(e Entry) error {
		if e.Seq <= upTo {
			keys = append(keys, keyFor(e.Seq, e.Index))
		}
		return nil
	}); err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	b := o.db.NewBatch()
	defer b.Close()
	for _, k := range keys {
		if err := b.Delete(k, nil); err != nil {
			return 0, err
		}
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return 0, errors.Wrap(err, "purge acked entries")
	}
	return len(keys), nil
}
