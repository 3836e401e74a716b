package decay

// Cell states, ordered from extinct to fully alive. A cell that meets none
// of its survival or growth conditions decays by exactly one level per
// generation; a dead cell either births at StateEmber or stays dead.
const (
	StateDead      uint8 = 0
	StateEmber     uint8 = 1
	StateDecayLow  uint8 = 2
	StateDecayHigh uint8 = 3
	StateAlive     uint8 = 4

	// NumStates is the size of the state domain (and of the palette).
	NumStates uint8 = 5
)

// NextState maps a cell's current state and its neighborhood statistics to
// the state it holds next generation. Each case is an ordered cascade: the
// survival condition is checked first, then successively higher growth
// conditions, and the fall-through decays one level. Reordering the checks
// changes the automaton.
func NextState(cur uint8, st NeighborStats) uint8 {
	var next uint8
	switch cur {
	case StateAlive:
		if st.GE[4] == 2 {
			next = StateAlive
		} else {
			next = StateDecayHigh
		}
	case StateDecayHigh:
		switch {
		case st.GE[3] == 2:
			next = StateDecayHigh
		case st.GE[4] >= 2:
			next = StateAlive
		default:
			next = StateDecayLow
		}
	case StateDecayLow:
		switch {
		case st.GE[2] == 3:
			next = StateDecayLow
		case st.GE[3] >= 2:
			next = StateDecayHigh
		case st.GE[4] >= 2:
			next = StateAlive
		default:
			next = StateEmber
		}
	case StateEmber:
		switch {
		case st.GE[1] == 4:
			next = StateEmber
		case st.GE[2] >= 2:
			next = StateDecayLow
		case st.GE[3] >= 2:
			next = StateDecayHigh
		case st.GE[4] >= 2:
			next = StateAlive
		default:
			next = StateDead
		}
	default:
		// Dead: birth on exactly three non-dead neighbors.
		if st.GE[1] == 3 {
			next = StateEmber
		} else {
			next = StateDead
		}
	}
	if next > StateAlive {
		next = StateAlive
	}
	return next
}
