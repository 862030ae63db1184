package qnum

// Access to the results in here from your benchmark defeats compiler
// optimisations that would otherwise throw your whole benchmark away.
var (
	BenchBoolResult bool
	BenchIntResult  int
	BenchU256Result U256
	BenchI256Result I256
	BenchQ128Result Q128
)
