package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

type Writer struct {
	Dir string
	// Keep is how many snapshot files to retain; <= 0 keeps all.
	Keep int
}

// Write stores s atomically and returns the file path.
func (w *Writer) Write(s *Snapshot) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create snapshot dir %s", w.Dir)
	}

	path := filepath.Join(w.Dir, fileName(s.Seq))
	tmp, err := os.CreateTemp(w.Dir, "snapshot-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(s); err != nil {
		_ = tmp.Close()
		return "", errors.Wrap(err, "encode snapshot")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", errors.Wrap(err, "publish snapshot")
	}

	if err := w.prune(); err != nil {
		return path, err
	}
	return path, nil
}

func (w *Writer) prune() error {
	if w.Keep <= 0 {
		return nil
	}
	files, err := list(w.Dir)
	if err != nil {
		return err
	}
	for len(files) > w.Keep {
		if err := os.Remove(files[0]); err != nil {
			return errors.Wrap(err, "prune snapshot")
		}
		files = files[1:]
	}
	return nil
}
