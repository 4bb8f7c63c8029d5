package bignum

const (
	// LimbBits is the number of bits held by each limb of a magnitude.
	LimbBits = 15

	// Radix is the base of the limb representation. Every limb is in the
	// range [0, Radix).
	Radix = 1 << LimbBits

	limbMask = Radix - 1

	// MinBase and MaxBase bound the radix accepted by Text, SetString and
	// friends.
	MinBase = 2
	MaxBase = len(digits)

	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63
)

// digits is the process-wide digit table used for rendering and parsing.
const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// rootSeed is the seed squared by the binary-search root to find an upper
// bracket. It is a Radix-sized value so that small operands need only a
// handful of squarings.
var rootSeed = nat{0, 1}

var (
	natZero = nat{0}
	natOne  = nat{1}
	natTwo  = nat{2}
	natTen  = nat{10}
)
