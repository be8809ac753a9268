package tetris

// GarbageEndpoint is the slice of a Field the exchange touches. The exchange
// never sees a grid.
type GarbageEndpoint interface {
	OutgoingGarbage() int
	ClearOutgoingGarbage()
	AddIncomingGarbage(n int)
}

var _ GarbageEndpoint = (*Field)(nil)

// GarbageExchange moves pending attacks between two opponents once per tick.
type GarbageExchange struct {
	// NetCancel offsets simultaneous attacks against each other. When false
	// both attacks are delivered in full.
	NetCancel bool
}

// Reconcile delivers a's and b's outgoing garbage to the other side and
// zeroes both outgoing counters. It returns the rows queued on each side.
func (e GarbageExchange) Reconcile(a, b GarbageEndpoint) (toA, toB int) {
	outA, outB := a.OutgoingGarbage(), b.OutgoingGarbage()
	a.ClearOutgoingGarbage()
	b.ClearOutgoingGarbage()

	switch {
	case outA > 0 && outB > 0 && e.NetCancel:
		if outA > outB {
			toB = outA - outB
		} else {
			toA = outB - outA
		}
	default:
		toA, toB = max(outB, 0), max(outA, 0)
	}

	if toA > 0 {
		a.AddIncomingGarbage(toA)
	}
	if toB > 0 {
		b.AddIncomingGarbage(toB)
	}
	return toA, toB
}
