// Package command implements the bncalc command tree.
package command

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	bignum "github.com/shabbyrobe/go-bignum"
	"github.com/shabbyrobe/go-bignum/internal/log"
)

const envPrefix = "BNCALC"

// settings holds the resolved persistent options shared by every subcommand.
type settings struct {
	v *viper.Viper
}

func (s *settings) radix() (int, error) {
	radix := s.v.GetInt("radix")
	if radix < bignum.MinBase || radix > bignum.MaxBase {
		return 0, errors.Wrapf(bignum.ErrInvalidBase, "radix %d", radix)
	}
	return radix, nil
}

func (s *settings) precision() uint {
	return s.v.GetUint("precision")
}

func (s *settings) rootStrategy() (bignum.RootStrategy, error) {
	return bignum.ParseRootStrategy(s.v.GetString("root-strategy"))
}

// parseInt reads an operand in the configured radix.
func (s *settings) parseInt(arg string) (*bignum.Int, error) {
	radix, err := s.radix()
	if err != nil {
		return nil, err
	}
	x, err := bignum.IntFromString(arg, radix)
	if err != nil {
		return nil, errors.Wrapf(err, "operand %q", arg)
	}
	return x, nil
}

func (s *settings) printInt(cmd *cobra.Command, x *bignum.Int) error {
	radix, err := s.radix()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), x.Text(radix))
	return err
}

// NewRoot builds a fresh bncalc command tree. Each tree has its own viper
// instance so that several trees can be driven in one process.
func NewRoot() *cobra.Command {
	s := &settings{v: viper.New()}

	root := &cobra.Command{
		Use:   "bncalc",
		Short: "bncalc is an arbitrary-precision integer and rational calculator.",
		Long: "`bncalc` evaluates integer and rational arithmetic with no size limit.\n\n" +
			"Options may be given as flags, as " + envPrefix + "_* environment variables, or in a config file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
	}

	fs := root.PersistentFlags()
	fs.String("config", "", "Config file (json, toml or yaml).")
	fs.Int("radix", 10, "Radix used to read operands and write results, 2 to 36.")
	fs.Uint("precision", 20, "Digits after the point when printing rationals as decimals.")
	fs.String("root-strategy", bignum.RootBinarySearch.String(), "Root algorithm: binary or newton.")
	log.RegisterFlags(fs)

	for _, key := range []string{"config", "radix", "precision", "root-strategy", "log-fmt", "log-level"} {
		_ = s.v.BindPFlag(key, fs.Lookup(key))
	}
	s.v.SetEnvPrefix(envPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.v.AutomaticEnv()

	root.AddCommand(
		newEval(s),
		newPow(s),
		newRootCmd(s),
		newConvert(s),
		newRat(s),
		newFact(s),
		newBinom(s),
		newInspect(s),
	)
	return root
}

func (s *settings) load(cmd *cobra.Command) error {
	if cfg := s.v.GetString("config"); cfg != "" {
		s.v.SetConfigFile(cfg)
		if err := s.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "bncalc: reading config %q", cfg)
		}
	}

	if err := log.Configure(s.v.GetString("log-fmt"), s.v.GetString("log-level"), cmd.ErrOrStderr()); err != nil {
		return err
	}
	if _, err := s.radix(); err != nil {
		return err
	}
	if _, err := s.rootStrategy(); err != nil {
		return err
	}

	log.DebugS("config loaded",
		"radix", s.v.GetInt("radix"),
		"precision", s.precision(),
		"root-strategy", s.v.GetString("root-strategy"),
		"config", s.v.ConfigFileUsed())
	return nil
}
