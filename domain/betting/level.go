package betting

// Level is the FIFO queue of bets resting at one multiplier. Bets are kept
// in ascending id order, which is arrival order.
type Level struct {
	Multiplier Multiplier

	head *Bet
	tail *Bet

	TotalStake int64
	BetCount   int
}

// Insert links b behind every bet with a smaller id. New bets always carry
// the largest id so this is an append; rollback and snapshot restore rely
// on the ordered walk.
func (l *Level) Insert(b *Bet) {
	at := l.tail
	for at != nil && at.ID > b.ID {
		at = at.prev
	}

	b.level = l
	if at == nil {
		b.prev = nil
		b.next = l.head
		if l.head != nil {
			l.head.prev = b
		} else {
			l.tail = b
		}
		l.head = b
	} else {
		b.prev = at
		b.next = at.next
		if at.next != nil {
			at.next.prev = b
		} else {
			l.tail = b
		}
		at.next = b
	}

	l.TotalStake += b.Stake
	l.BetCount++
}

func (l *Level) unlink(b *Bet) {
	if b.prev != nil {
		b.prev.next = b.next
	} else {
		l.head = b.next
	}
	if b.next != nil {
		b.next.prev = b.prev
	} else {
		l.tail = b.prev
	}

	l.TotalStake -= b.Stake
	l.BetCount--

	b.level = nil
	b.next = nil
	b.prev = nil
}

func (l *Level) Empty() bool {
	return l.head == nil
}

func (l *Level) Head() *Bet {
	return l.head
}
