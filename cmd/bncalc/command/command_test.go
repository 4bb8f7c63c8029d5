package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	bignum "github.com/shabbyrobe/go-bignum"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRoot()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err)
	return out
}

func TestEval(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"eval", "123456789012345678901234567890", "+", "1"}, "123456789012345678901234567891\n"},
		{[]string{"eval", "5", "-", "7"}, "-2\n"},
		{[]string{"eval", "65535", "*", "65535"}, "4294836225\n"},
		{[]string{"eval", "--", "-7", "div", "2"}, "-4\n"},
		{[]string{"eval", "--", "-7", "/", "2"}, "-4\n"},
		{[]string{"eval", "--", "-7", "mod", "2"}, "1\n"},
		{[]string{"eval", "--", "-7", "quo", "2"}, "-3\n"},
		{[]string{"eval", "--", "-7", "rem", "2"}, "-1\n"},
		{[]string{"eval", "--", "-100", "divmod", "7"}, "-15\n5\n"},
		{[]string{"eval", "--", "-100", "QUOREM", "7"}, "-14\n-2\n"},
		{[]string{"eval", "12", "gcd", "18"}, "6\n"},
		{[]string{"eval", "3", "cmp", "4"}, "-1\n"},
		{[]string{"--radix", "16", "eval", "ff", "*", "ff"}, "FE01\n"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			require.Equal(t, tc.out, mustRun(t, tc.args...))
		})
	}
}

func TestEvalErrors(t *testing.T) {
	_, err := run(t, "eval", "1", "/", "0")
	require.ErrorIs(t, err, bignum.ErrDivideByZero)

	_, err = run(t, "eval", "1", "^", "2")
	require.ErrorContains(t, err, "unknown operator")

	_, err = run(t, "eval", "12a", "+", "1")
	require.ErrorIs(t, err, bignum.ErrMalformedInput)

	_, err = run(t, "--radix", "37", "eval", "1", "+", "1")
	require.ErrorIs(t, err, bignum.ErrInvalidBase)

	_, err = run(t, "eval", "1", "+")
	require.Error(t, err)
}

func TestPow(t *testing.T) {
	require.Equal(t, "1267650600228229401496703205376\n", mustRun(t, "pow", "2", "100"))
	require.Equal(t, "-27\n", mustRun(t, "pow", "--", "-3", "3"))
	require.Equal(t, "1\n", mustRun(t, "pow", "0", "0"))

	_, err := run(t, "pow", "2", "x")
	require.Error(t, err)
}

func TestRoot(t *testing.T) {
	for _, strategy := range []string{"binary", "newton"} {
		t.Run(strategy, func(t *testing.T) {
			require.Equal(t, "316227766016837933199\n",
				mustRun(t, "--root-strategy", strategy, "root", "100000000000000000000000000000000000000000"))
			require.Equal(t, "-3\n", mustRun(t, "--root-strategy", strategy, "root", "--", "-28", "3"))
		})
	}

	_, err := run(t, "root", "--", "-4")
	require.ErrorIs(t, err, bignum.ErrNegativeRoot)

	_, err = run(t, "root", "4", "0")
	require.ErrorIs(t, err, bignum.ErrInvalidRootIndex)

	_, err = run(t, "--root-strategy", "guess", "root", "4")
	require.ErrorContains(t, err, "unknown root strategy")
}

func TestConvert(t *testing.T) {
	require.Equal(t, "-FF\n", mustRun(t, "convert", "--", "-255"))
	require.Equal(t, "11111111\n", mustRun(t, "convert", "--from", "16", "--to", "2", "ff"))
	require.Equal(t, "255\n", mustRun(t, "--radix", "2", "convert", "--to", "10", "11111111"))

	_, err := run(t, "convert", "--to", "1", "5")
	require.ErrorIs(t, err, bignum.ErrInvalidBase)

	_, err = run(t, "convert", "--from", "2", "12")
	require.ErrorIs(t, err, bignum.ErrMalformedInput)
}

func TestRat(t *testing.T) {
	require.Equal(t, "-3/4\n", mustRun(t, "rat", "--", "-6/8"))
	require.Equal(t, "2/3\n", mustRun(t, "rat", "1/3", "+", "1/3"))
	require.Equal(t, "1\n", mustRun(t, "rat", "1/3", "+", "2/3"))
	require.Equal(t, "3/2\n", mustRun(t, "rat", "0.5", "*", "3"))
	require.Equal(t, "0.67\n", mustRun(t, "--precision", "2", "rat", "--decimal", "1/3", "+", "1/3"))
	require.Equal(t, "0.25\n", mustRun(t, "rat", "--float", "1/4"))

	_, err := run(t, "rat", "1/3", "/", "0")
	require.ErrorIs(t, err, bignum.ErrDivideByZero)

	_, err = run(t, "rat", "1/0")
	require.ErrorIs(t, err, bignum.ErrDivideByZero)

	_, err = run(t, "rat", "1/3", "+")
	require.ErrorContains(t, err, "expected 1 or 3 arguments")
}

func TestFactBinom(t *testing.T) {
	require.Equal(t, "2432902008176640000\n", mustRun(t, "fact", "20"))
	require.Equal(t, "2598960\n", mustRun(t, "binom", "52", "5"))
	require.Equal(t, "0\n", mustRun(t, "binom", "5", "6"))
	require.Equal(t, "27A830\n", mustRun(t, "--radix", "16", "binom", "52", "5"))

	_, err := run(t, "fact", "--", "-1")
	require.Error(t, err)
}

func TestInspect(t *testing.T) {
	out := mustRun(t, "inspect", "--dump", "--", "-65536")
	require.Contains(t, out, "sign:   -1\n")
	require.Contains(t, out, "limbs:  2\n")
	require.Contains(t, out, "bits:   17\n")
	require.Contains(t, out, "digits: 5\n")
	require.Contains(t, out, "size:   4 B\n")
	require.Contains(t, out, "([]uint16) (len=2) {")

	out = mustRun(t, "inspect", "1"+strings.Repeat("0", 5000))
	require.Contains(t, out, "digits: 5,001\n")
}

func TestConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "bncalc.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("radix: 16\nprecision: 3\n"), 0o600))

	require.Equal(t, "FF\n", mustRun(t, "--config", cfg, "eval", "F0", "+", "F"))
	require.Equal(t, "0.333\n", mustRun(t, "--config", cfg, "rat", "--decimal", "1/3"))

	// flags win over the config file
	require.Equal(t, "255\n", mustRun(t, "--config", cfg, "--radix", "10", "eval", "250", "+", "5"))

	t.Setenv("BNCALC_RADIX", "2")
	require.Equal(t, "100\n", mustRun(t, "eval", "10", "+", "10"))

	// radix 2 still applies, so this is root(9)
	t.Setenv("BNCALC_ROOT_STRATEGY", "newton")
	require.Equal(t, "11\n", mustRun(t, "root", "1001"))

	_, err := run(t, "--config", filepath.Join(dir, "missing.yaml"), "eval", "1", "+", "1")
	require.ErrorContains(t, err, "reading config")
}

func TestLogOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	root := NewRoot()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"--log-fmt", "json", "--log-level", "info", "fact", "30"})
	require.NoError(t, root.Execute())

	require.Equal(t, "265252859812191058636308480000000\n", out.String())
	require.Contains(t, errOut.String(), `"msg":"factorial"`)

	_, err := run(t, "--log-level", "chatty", "fact", "3")
	require.ErrorContains(t, err, "invalid log-level")
}
