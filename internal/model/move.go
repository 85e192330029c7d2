package model

// MoveKind represents the category of a recorded move.
type MoveKind string

const (
	// MoveSwap exchanges the display elements at two indices.
	MoveSwap MoveKind = "swap"
	// MoveSet overwrites the display element at one index with a value.
	MoveSet MoveKind = "set"
	// MovePivot is a swap that places a partition pivot into its final
	// slot. Replay may animate it differently from an ordinary swap.
	MovePivot MoveKind = "pivot"
)

// Move is one atomic visual mutation recorded during a sort run.
// For MoveSwap and MovePivot, A and B are the two indices being
// exchanged (A is the pivot's index for MovePivot). For MoveSet,
// A is the index and B is the new value.
type Move struct {
	Kind MoveKind
	A    int
	B    int
}

// Swap builds a MoveSwap record for indices i and j.
func Swap(i, j int) Move {
	return Move{Kind: MoveSwap, A: i, B: j}
}

// Set builds a MoveSet record writing value v at index i.
func Set(i, v int) Move {
	return Move{Kind: MoveSet, A: i, B: v}
}

// Pivot builds a MovePivot record moving the pivot at index i to index j.
func Pivot(i, j int) Move {
	return Move{Kind: MovePivot, A: i, B: j}
}

// Log is the ordered sequence of moves recorded by one sort run.
type Log []Move

// Stats holds the explicit counters for one sort run.
type Stats struct {
	Comparisons   int
	ArrayAccesses int
	Moves         int
}
