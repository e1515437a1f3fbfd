package uf

// Cost describes the asymptotic running time of a variant's operations,
// with N the universe size.
type Cost struct {
	Init    string // constructor
	Union   string
	Find    string
	Process string // N unions end to end
	Note    string
}

var costs = map[Variant]Cost{
	QuickFindVariant: {
		Init:    "O(N)",
		Union:   "O(N)",
		Find:    "O(1)",
		Process: "O(N^2)",
	},
	QuickUnionVariant: {
		Init:    "O(N)",
		Union:   "O(N)",
		Find:    "O(N)",
		Process: "O(N^2)",
		Note:    "union includes the cost of finding both roots; trees can grow tall, resembling a list",
	},
	WeightedQuickUnionVariant: {
		Init:    "O(N)",
		Union:   "O(lgN)",
		Find:    "O(lgN)",
		Process: "O(N lgN)",
		Note:    "path halving makes the amortized cost nearly constant",
	},
}

// Complexity returns the documented cost of v's operations.
// The boolean is false for an unknown variant.
func Complexity(v Variant) (Cost, bool) {
	c, ok := costs[v]

	return c, ok
}
