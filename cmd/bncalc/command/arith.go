package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	bignum "github.com/shabbyrobe/go-bignum"
	"github.com/shabbyrobe/go-bignum/internal/log"
)

// intOp applies a binary operator to x and y, writing one or more results.
type intOp func(x, y *bignum.Int) ([]*bignum.Int, error)

func one(z *bignum.Int, err error) ([]*bignum.Int, error) {
	if err != nil {
		return nil, err
	}
	return []*bignum.Int{z}, nil
}

func two(q, r *bignum.Int, err error) ([]*bignum.Int, error) {
	if err != nil {
		return nil, err
	}
	return []*bignum.Int{q, r}, nil
}

// "/" and "%" are floor division, matching div and mod.
var intOps = map[string]intOp{
	"+": func(x, y *bignum.Int) ([]*bignum.Int, error) { return one(new(bignum.Int).Add(x, y), nil) },
	"-": func(x, y *bignum.Int) ([]*bignum.Int, error) { return one(new(bignum.Int).Sub(x, y), nil) },
	"*": func(x, y *bignum.Int) ([]*bignum.Int, error) { return one(new(bignum.Int).Mul(x, y), nil) },
	"/": func(x, y *bignum.Int) ([]*bignum.Int, error) { return one(new(bignum.Int).Div(x, y)) },
	"%": func(x, y *bignum.Int) ([]*bignum.Int, error) { return one(new(bignum.Int).Mod(x, y)) },

	"div": func(x, y *bignum.Int) ([]*bignum.Int, error) { return one(new(bignum.Int).Div(x, y)) },
	"mod": func(x, y *bignum.Int) ([]*bignum.Int, error) { return one(new(bignum.Int).Mod(x, y)) },
	"quo": func(x, y *bignum.Int) ([]*bignum.Int, error) { return one(new(bignum.Int).Quo(x, y)) },
	"rem": func(x, y *bignum.Int) ([]*bignum.Int, error) { return one(new(bignum.Int).Rem(x, y)) },
	"gcd": func(x, y *bignum.Int) ([]*bignum.Int, error) { return one(new(bignum.Int).GCD(x, y), nil) },

	"divmod": func(x, y *bignum.Int) ([]*bignum.Int, error) {
		return two(new(bignum.Int).DivMod(x, y, new(bignum.Int)))
	},
	"quorem": func(x, y *bignum.Int) ([]*bignum.Int, error) {
		return two(new(bignum.Int).QuoRem(x, y, new(bignum.Int)))
	},
	"cmp": func(x, y *bignum.Int) ([]*bignum.Int, error) {
		return one(bignum.NewInt(int64(x.Cmp(y))), nil)
	},
}

func intOpNames() string {
	return "+ - * / % div mod quo rem divmod quorem gcd cmp"
}

func newEval(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <x> <op> <y>",
		Short: "Apply a binary integer operator.",
		Long: "Apply a binary integer operator. Supported operators: " + intOpNames() + ".\n\n" +
			"`/`, `%`, `div` and `mod` round the quotient towards negative infinity; " +
			"`quo` and `rem` truncate towards zero.",
		Example: "bncalc eval -- -7 div 2\nbncalc --radix 16 eval FF '*' FF",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opName := strings.ToLower(args[1])
			op, ok := intOps[opName]
			if !ok {
				return fmt.Errorf("eval: unknown operator %q, expected one of %s", args[1], intOpNames())
			}
			x, err := s.parseInt(args[0])
			if err != nil {
				return err
			}
			y, err := s.parseInt(args[2])
			if err != nil {
				return err
			}

			results, err := op(x, y)
			if err != nil {
				return errors.Wrapf(err, "eval %s", opName)
			}
			log.DebugS("eval", "op", opName, "xbits", x.BitLen(), "ybits", y.BitLen())

			for _, r := range results {
				if err := s.printInt(cmd, r); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func parseUint(name, arg string) (uint, error) {
	v, err := strconv.ParseUint(arg, 10, 0)
	if err != nil {
		return 0, errors.Wrapf(err, "%s %q", name, arg)
	}
	return uint(v), nil
}

func newPow(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "pow <x> <e>",
		Short: "Raise x to the non-negative decimal power e.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := s.parseInt(args[0])
			if err != nil {
				return err
			}
			e, err := parseUint("exponent", args[1])
			if err != nil {
				return err
			}
			return s.printInt(cmd, new(bignum.Int).Pow(x, e))
		},
	}
}

func newRootCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "root <x> [n]",
		Short: "Compute the integer n-th root of x (default square root).",
		Long: "Compute the integer n-th root of x, truncated towards zero. " +
			"The algorithm is chosen with --root-strategy.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := s.parseInt(args[0])
			if err != nil {
				return err
			}
			n := uint(2)
			if len(args) > 1 {
				if n, err = parseUint("root index", args[1]); err != nil {
					return err
				}
			}
			strategy, err := s.rootStrategy()
			if err != nil {
				return err
			}

			r, err := new(bignum.Int).RootWith(x, n, strategy)
			if err != nil {
				return errors.Wrapf(err, "root %d", n)
			}
			log.DebugS("root", "n", n, "strategy", strategy.String(), "bits", x.BitLen())
			return s.printInt(cmd, r)
		},
	}
}
