package command

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newInspect(s *settings) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "inspect <x>",
		Short: "Describe the internal representation of an integer.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := s.parseInt(args[0])
			if err != nil {
				return err
			}

			limbs := x.Limbs()
			digits := len(x.Text(10))
			if x.Sign() < 0 {
				digits--
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sign:   %d\n", x.Sign())
			fmt.Fprintf(out, "limbs:  %s\n", humanize.Comma(int64(len(limbs))))
			fmt.Fprintf(out, "bits:   %s\n", humanize.Comma(int64(x.BitLen())))
			fmt.Fprintf(out, "digits: %s\n", humanize.Comma(int64(digits)))
			fmt.Fprintf(out, "size:   %s\n", humanize.IBytes(uint64(len(limbs)*2)))

			if dump {
				dumper.Fdump(out, limbs)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the limbs, least significant first.")
	return cmd
}
