package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"
)

// list returns snapshot files oldest first. The zero-padded sequence in
// the name makes lexical order sequence order.
func list(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "snapshot-*.snap"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, errors.Wrapf(err, "decode snapshot %s", filepath.Base(path))
	}
	return &s, nil
}

// LoadLatest returns the newest snapshot in dir, or nil if there is none.
func LoadLatest(dir string) (*Snapshot, error) {
	files, err := list(dir)
	if err != nil || len(files) == 0 {
		return nil, err
	}
	return Load(files[len(files)-1])
}
