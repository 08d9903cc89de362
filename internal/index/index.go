package index

import "fmt"

// Index is a position in a displayed list. It is stored zero-based and can be
// rendered either way.
type Index struct {
	zero int
}

// FromZeroBased panics on negative input; user input goes through parser.ParseIndex.
func FromZeroBased(n int) Index {
	if n < 0 {
		panic(fmt.Sprintf("index: negative zero-based index %d", n))
	}
	return Index{zero: n}
}

func FromOneBased(n int) Index {
	if n < 1 {
		panic(fmt.Sprintf("index: non-positive one-based index %d", n))
	}
	return Index{zero: n - 1}
}

func (i Index) ZeroBased() int { return i.zero }

func (i Index) OneBased() int { return i.zero + 1 }

func (i Index) String() string { return fmt.Sprintf("%d", i.OneBased()) }
