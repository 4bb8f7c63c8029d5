package command

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	bignum "github.com/shabbyrobe/go-bignum"
	"github.com/shabbyrobe/go-bignum/internal/log"
)

func newFact(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "fact <n>",
		Short: "Compute n factorial.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint("n", args[0])
			if err != nil {
				return err
			}
			r := bignum.Factorial(n)
			log.InfoS("factorial", "n", humanize.Comma(int64(n)), "bits", humanize.Comma(int64(r.BitLen())))
			return s.printInt(cmd, r)
		},
	}
}

func newBinom(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "binom <n> <k>",
		Short: "Compute the binomial coefficient C(n, k).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint("n", args[0])
			if err != nil {
				return err
			}
			k, err := parseUint("k", args[1])
			if err != nil {
				return err
			}
			r := bignum.Binomial(n, k)
			log.InfoS("binomial", "n", n, "k", k, "bits", humanize.Comma(int64(r.BitLen())))
			return s.printInt(cmd, r)
		},
	}
}
