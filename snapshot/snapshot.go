package snapshot

import (
	"fmt"
	"time"

	"bookie/domain/betting"
)

const filePattern = "snapshot-%020d.snap"

type Snapshot struct {
	Seq      uint64
	Created  time.Time
	Params   betting.Params
	State    betting.State
	Balances []betting.Balance
}

func fileName(seq uint64) string {
	return fmt.Sprintf(filePattern, seq)
}
