package eventtree

import (
	"errors"
	"math"
	"testing"

	"github.com/lotto-kmc/lotto/kmcerr"
)

func TestNew_TotalRateIsSumOfInitialRates(t *testing.T) {
	tree, err := New([]int{0, 1, 2, 3}, []float64{0.1, 0.2, 0.3, 0.4})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := tree.TotalRate(); got != 1.0 {
		t.Errorf("TotalRate() = %v, want 1.0", got)
	}
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New([]int{0, 0}, []float64{1, 1})
	if !errors.Is(err, kmcerr.ErrInvalidConfiguration) {
		t.Fatalf("New with duplicate ids: err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestNew_RejectsMismatchedLengths(t *testing.T) {
	_, err := New([]int{0, 1}, []float64{1})
	if !errors.Is(err, kmcerr.ErrInvalidConfiguration) {
		t.Fatalf("New with mismatched lengths: err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestNew_RejectsNegativeRate(t *testing.T) {
	_, err := New([]int{0}, []float64{-1})
	if !errors.Is(err, kmcerr.ErrInvalidConfiguration) {
		t.Fatalf("New with negative rate: err = %v, want ErrInvalidConfiguration", err)
	}
}

// Literal end-to-end scenario 1 from the testable-properties list.
func TestQueryTree_LiteralScenario(t *testing.T) {
	tree, err := New([]int{0, 1, 2, 3}, []float64{0.1, 0.2, 0.3, 0.4})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if got := tree.QueryTree(0.25); got != 1 {
		t.Errorf("QueryTree(0.25) = %v, want leaf 1", got)
	}
	if got := tree.QueryTree(1.0); got != 3 {
		t.Errorf("QueryTree(1.0) = %v, want leaf 3", got)
	}
}

// Literal end-to-end scenario 2: update leaf 2 from 0.3 to 0.0.
func TestUpdateRate_LiteralScenario(t *testing.T) {
	tree, err := New([]int{0, 1, 2, 3}, []float64{0.1, 0.2, 0.3, 0.4})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := tree.UpdateRate(2, 0.0); err != nil {
		t.Fatalf("UpdateRate returned error: %v", err)
	}

	// 0.1+0.2+0.0+0.4 summed in float64 is 0.7000000000000001, so the
	// total is compared to 0.7 up to double-precision rounding.
	if got := tree.TotalRate(); math.Abs(got-0.7) > 1e-12 {
		t.Errorf("TotalRate() after update = %v, want 0.7", got)
	}
	if got := tree.QueryTree(0.7); got != 3 {
		t.Errorf("QueryTree(0.7) = %v, want leaf 3", got)
	}
	if got := tree.QueryTree(0.3); got != 1 {
		t.Errorf("QueryTree(0.3) = %v, want leaf 1", got)
	}
}

func TestUpdateRate_ChangesTotalByExactDelta(t *testing.T) {
	rates := []float64{1, 2, 3, 4, 5}
	tree, err := New([]int{0, 1, 2, 3, 4}, rates)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	oldTotal := tree.TotalRate()
	if err := tree.UpdateRate(2, 30); err != nil {
		t.Fatalf("UpdateRate returned error: %v", err)
	}
	newTotal := tree.TotalRate()

	if newTotal != oldTotal+(30-3) {
		t.Errorf("new total = %v, want %v", newTotal, oldTotal+(30-3))
	}
}

func TestUpdateRate_UnknownID(t *testing.T) {
	tree, _ := New([]int{0, 1}, []float64{1, 1})
	err := tree.UpdateRate(99, 1.0)
	if !errors.Is(err, kmcerr.ErrOutOfDomain) {
		t.Fatalf("UpdateRate(unknown id): err = %v, want ErrOutOfDomain", err)
	}
}

func TestUpdateRate_NegativeRate(t *testing.T) {
	tree, _ := New([]int{0, 1}, []float64{1, 1})
	err := tree.UpdateRate(0, -1.0)
	if !errors.Is(err, kmcerr.ErrInvalidConfiguration) {
		t.Fatalf("UpdateRate(negative rate): err = %v, want ErrInvalidConfiguration", err)
	}
}

// Edge case: with all rates = 1 and ids indexed 0..N-1 by insertion,
// QueryTree(i+1) returns ids[i] for every i.
func TestQueryTree_EdgeCaseAllUnitRates(t *testing.T) {
	const n = 10
	ids := make([]int, n)
	rates := make([]float64, n)
	for i := range ids {
		ids[i] = i * 100 // nonconsecutive, to make sure we're not accidentally indexing by value
		rates[i] = 1.0
	}
	tree, err := New(ids, rates)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	for i := 0; i < n; i++ {
		got := tree.QueryTree(float64(i + 1))
		if got != ids[i] {
			t.Errorf("QueryTree(%d) = %v, want ids[%d] = %v", i+1, got, i, ids[i])
		}
	}
}

func TestQueryTree_UnreachableZeroRateLeaves(t *testing.T) {
	// Leaves with rate 0 can never be the result of a query, since no u
	// in (0, total] satisfies R(i-1) < u <= R(i) for a zero-width
	// cumulative interval.
	tree, err := New([]int{0, 1, 2}, []float64{1, 0, 1})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for u := 0.01; u <= 2.0; u += 0.01 {
		if got := tree.QueryTree(u); got == 1 {
			t.Fatalf("QueryTree(%v) returned zero-rate leaf 1", u)
		}
	}
}

func TestQueryTree_SingleEvent(t *testing.T) {
	tree, err := New([]int{42}, []float64{3.5})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := tree.QueryTree(3.5); got != 42 {
		t.Errorf("QueryTree(3.5) = %v, want 42", got)
	}
	if got := tree.QueryTree(0.001); got != 42 {
		t.Errorf("QueryTree(0.001) = %v, want 42", got)
	}
}
