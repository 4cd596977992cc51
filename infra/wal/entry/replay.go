package entry

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

var ErrCorruptRecord = errors.New("wal: corrupt record")

// maxPayload bounds the length field so a damaged header cannot ask for a
// huge allocation.
const maxPayload = 64 << 20

type ReplayHandler func(*Record) error

// Replay feeds every record with a sequence above after to fn, in log
// order. A torn frame at the very end of the newest segment is treated as
// the end of the log; corruption anywhere else is an error.
func Replay(dir string, after uint64, fn ReplayHandler) (lastSeq uint64, err error) {
	files, err := listSegments(dir)
	if err != nil {
		return 0, err
	}

	lastSeq = after
	var prev uint64
	for i, path := range files {
		last := i == len(files)-1
		if err := replaySegment(path, last, func(rec *Record) error {
			if rec.Seq <= prev {
				return errors.Newf("non-monotonic seq %d after %d in %s", rec.Seq, prev, path)
			}
			prev = rec.Seq
			if rec.Seq <= after {
				return nil
			}
			lastSeq = rec.Seq
			return fn(rec)
		}); err != nil {
			return lastSeq, err
		}
	}
	return lastSeq, nil
}

func replaySegment(path string, tail bool, fn ReplayHandler) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for {
		rec, err := readRecord(f)
		switch {
		case err == io.EOF:
			return nil
		case tail && (errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, ErrCorruptRecord)):
			// torn write from a crash mid-append
			return nil
		case err != nil:
			return errors.Wrapf(err, "read %s", path)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

func readRecord(r io.Reader) (*Record, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	l := binary.BigEndian.Uint32(header[17:21])
	if l > maxPayload {
		return nil, ErrCorruptRecord
	}
	data := make([]byte, l+4)
	if _, err := io.ReadFull(r, data); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}

	payload := data[:l]
	crc := binary.BigEndian.Uint32(data[l:])
	if crc32Sum(append(header, payload...)) != crc {
		return nil, ErrCorruptRecord
	}

	return &Record{
		Type: RecordType(header[0]),
		Seq:  binary.BigEndian.Uint64(header[1:9]),
		Time: int64(binary.BigEndian.Uint64(header[9:17])),
		Data: payload,
	}, nil
}

// truncateTornTail cuts the segment at path after its last whole frame and
// reports how many bytes were dropped.
func truncateTornTail(path string) (int64, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return 0, err
	}

	r := bufio.NewReader(f)
	var valid int64
	for {
		rec, err := readRecord(r)
		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, ErrCorruptRecord) {
			break
		}
		if err != nil {
			return 0, err
		}
		valid += int64(headerSize + len(rec.Data) + 4)
	}

	cut := st.Size() - valid
	if cut == 0 {
		return 0, nil
	}
	if err := f.Truncate(valid); err != nil {
		return 0, err
	}
	return cut, f.Sync()
}
