package command

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	bignum "github.com/shabbyrobe/go-bignum"
)

var ratOps = map[string]func(x, y *bignum.Rat) (*bignum.Rat, error){
	"+": func(x, y *bignum.Rat) (*bignum.Rat, error) { return new(bignum.Rat).Add(x, y), nil },
	"-": func(x, y *bignum.Rat) (*bignum.Rat, error) { return new(bignum.Rat).Sub(x, y), nil },
	"*": func(x, y *bignum.Rat) (*bignum.Rat, error) { return new(bignum.Rat).Mul(x, y), nil },
	"/": func(x, y *bignum.Rat) (*bignum.Rat, error) { return new(bignum.Rat).Quo(x, y) },
}

func newRat(s *settings) *cobra.Command {
	var decimal, float bool

	cmd := &cobra.Command{
		Use:   "rat <x> [<op> <y>]",
		Short: "Evaluate or normalise rationals written as a/b, a or a.b.",
		Long: "With one operand, print it in lowest terms. With three, apply + - * or /.\n\n" +
			"Operands are always decimal. --decimal prints the result rounded half-up to --precision digits.",
		Example: "bncalc rat -- -6/8\nbncalc rat --decimal --precision 2 1/3 + 1/3",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("rat: expected 1 or 3 arguments, found %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := bignum.RatFromString(args[0])
			if err != nil {
				return errors.Wrapf(err, "rat %q", args[0])
			}

			result := x
			if len(args) == 3 {
				op, ok := ratOps[args[1]]
				if !ok {
					return fmt.Errorf("rat: unknown operator %q, expected one of + - * /", args[1])
				}
				y, err := bignum.RatFromString(args[2])
				if err != nil {
					return errors.Wrapf(err, "rat %q", args[2])
				}
				if result, err = op(x, y); err != nil {
					return errors.Wrapf(err, "rat %s", args[1])
				}
			}

			out := cmd.OutOrStdout()
			switch {
			case float:
				f, err := result.Float64()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, strconv.FormatFloat(f, 'g', -1, 64))
				return err
			case decimal:
				_, err = fmt.Fprintln(out, result.AsDecimal(s.precision()))
				return err
			default:
				_, err = fmt.Fprintln(out, result.RatString())
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&decimal, "decimal", false, "Print the result as a rounded decimal.")
	cmd.Flags().BoolVar(&float, "float", false, "Print the result as the nearest float64.")
	cmd.MarkFlagsMutuallyExclusive("decimal", "float")
	return cmd
}
