package uf

import "fmt"

// checkIndex validates that p lies in [0, n).
// Complexity: O(1).
func checkIndex(p, n int) error {
	if p < 0 || p >= n {
		return fmt.Errorf("%w: index %d not in [0, %d)", ErrIndexOutOfRange, p, n)
	}

	return nil
}

// checkPair validates both points of a Union or Connected call.
// p is reported first when both are invalid.
func checkPair(p, q, n int) error {
	if err := checkIndex(p, n); err != nil {
		return err
	}

	return checkIndex(q, n)
}

// mustPositive enforces the constructor precondition n > 0.
func mustPositive(kind string, n int) {
	if n <= 0 {
		panic(fmt.Sprintf("uf: %s requires n > 0, got %d", kind, n))
	}
}
