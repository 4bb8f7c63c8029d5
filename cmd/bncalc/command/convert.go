package command

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	bignum "github.com/shabbyrobe/go-bignum"
)

func newConvert(s *settings) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:     "convert <x>",
		Short:   "Convert an integer between radixes.",
		Example: "bncalc convert --from 16 --to 2 -- -FF",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("from") {
				radix, err := s.radix()
				if err != nil {
					return err
				}
				from = radix
			}

			x, err := bignum.IntFromString(args[0], from)
			if err != nil {
				return errors.Wrapf(err, "convert %q", args[0])
			}
			if to < bignum.MinBase || to > bignum.MaxBase {
				return errors.Wrapf(bignum.ErrInvalidBase, "convert: --to %d", to)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), x.Text(to))
			return err
		},
	}

	cmd.Flags().IntVar(&from, "from", 10, "Radix of the input. Defaults to --radix.")
	cmd.Flags().IntVar(&to, "to", 16, "Radix of the output.")
	return cmd
}
