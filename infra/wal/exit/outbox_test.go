package exit

import (
	"testing"
)

func openTestOutbox(t *testing.T, dir string) *Outbox {
	t.Helper()
	o, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return o
}

func TestAppendAndScan(t *testing.T) {
	o := openTestOutbox(t, t.TempDir())
	defer o.Close()

	if err := o.Append(7, [][]byte{[]byte("a"), []byte("b")}, false); err != nil {
		t.Fatal(err)
	}
	if err := o.Append(9, [][]byte{[]byte("c")}, false); err != nil {
		t.Fatal(err)
	}
	if err := o.UpdateState(7, 1, StateAcked, 0); err != nil {
		t.Fatal(err)
	}

	var got []string
	err := o.ScanByState(StateNew, 0, func(e Entry) error {
		got = append(got, string(e.Payload))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("NEW entries = %v", got)
	}

	e, err := o.Get(7, 1)
	if err != nil {
		t.Fatal(err)
	}
	if e.State != StateAcked || string(e.Payload) != "b" || e.LastAttempt == 0 {
		t.Fatalf("entry 7/1 = %+v", e)
	}
}

func TestScanOrderFollowsSequence(t *testing.T) {
	o := openTestOutbox(t, t.TempDir())
	defer o.Close()
	o.Append(100, [][]byte{{1}}, false)
	o.Append(20, make([][]byte, 12), false)

	var seqs []uint64
	var idx []uint32
	o.ScanByState(StateNew, 0, func(e Entry) error {
		seqs = append(seqs, e.Seq)
		idx = append(idx, e.Index)
		return nil
	})
	if len(seqs) != 13 || seqs[0] != 20 || idx[11] != 11 || seqs[12] != 100 {
		t.Fatalf("scan order seqs=%v idx=%v", seqs, idx)
	}
}

func TestScanLimit(t *testing.T) {
	o := openTestOutbox(t, t.TempDir())
	defer o.Close()
	o.Append(1, [][]byte{{1}, {2}, {3}}, false)

	n := 0
	o.ScanByState(StateNew, 2, func(Entry) error { n++; return nil })
	if n != 2 {
		t.Fatalf("visited %d entries, want 2", n)
	}
}

func TestAppendSkipExisting(t *testing.T) {
	dir := t.TempDir()
	o := openTestOutbox(t, dir)
	o.Append(5, [][]byte{[]byte("x"), []byte("y")}, false)
	o.UpdateState(5, 0, StateAcked, 0)
	o.Close()

	o = openTestOutbox(t, dir)
	defer o.Close()
	if err := o.Append(5, [][]byte{[]byte("x"), []byte("y"), []byte("z")}, true); err != nil {
		t.Fatal(err)
	}

	counts, err := o.Count()
	if err != nil {
		t.Fatal(err)
	}
	if counts[StateAcked] != 1 || counts[StateNew] != 2 {
		t.Fatalf("counts = %v", counts)
	}

	if n, err := o.PurgeAcked(5); err != nil || n != 1 {
		t.Fatalf("purged %d, err %v", n, err)
	}
	if _, err := o.Get(5, 0); err == nil {
		t.Fatal("acked entry survived purge")
	}
}

func TestPurgeAckedStopsAtSeq(t *testing.T) {
	o := openTestOutbox(t, t.TempDir())
	defer o.Close()
	for seq := uint64(1); seq <= 4; seq++ {
		if err := o.Append(seq, [][]byte{[]byte("e")}, false); err != nil {
			t.Fatal(err)
		}
	}
	for _, seq := range []uint64{1, 3, 4} {
		o.UpdateState(seq, 0, StateAcked, 0)
	}

	n, err := o.PurgeAcked(3)
	if err != nil || n != 2 {
		t.Fatalf("purged %d, err %v; want 2", n, err)
	}
	for seq, want := range map[uint64]bool{1: false, 2: true, 3: false, 4: true} {
		_, err := o.Get(seq, 0)
		if got := err == nil; got != want {
			t.Errorf("entry %d present = %v, want %v", seq, got, want)
		}
	}
}
