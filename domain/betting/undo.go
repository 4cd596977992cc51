package betting

// undoLog records the inverse of every mutation made by the current
// operation.
type undoLog struct {
	ops []func()
}

func (u *undoLog) push(fn func()) {
	u.ops = append(u.ops, fn)
}

func (u *undoLog) rollback() {
	for i := len(u.ops) - 1; i >= 0; i-- {
		u.ops[i]()
	}
	u.ops = u.ops[:0]
}

func (u *undoLog) commit() {
	clear(u.ops)
	u.ops = u.ops[:0]
}
