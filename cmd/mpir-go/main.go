// Command mpir-go is a diagnostic and demo front end for the mpir package:
// it reports which arithmetic engine a build carries and exposes the binding
// surface for quick experiments from the shell.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpirlabs/mpir-go/pkg/mpir"
	"github.com/mpirlabs/mpir-go/pkg/mpir/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	base    int
	verbose bool
}

func (o *options) logger() logging.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return logging.New(slog.New(handler))
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "mpir-go",
		Short:         "Arbitrary-precision integer arithmetic via the mpir binding",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().IntVar(&opts.base, "base", 10, "input/output base (2..62)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newVersionCmd(), newEvalCmd(opts), newFibCmd(opts))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print wrapper and engine versions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mpir-go %s\n", mpir.WrapperVersion())
			fmt.Printf("engine: %s\n", mpir.EngineVersion())
		},
	}
}

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval A OP B",
		Short: "Apply one binary operation to two big integers",
		Long: `Apply one binary operation to two big integers.

Operators: + - x / % mod pow gcd lcm cmp
(x is multiplication; / and % truncate toward zero; mod is always
non-negative; pow takes B as an unsigned exponent; use -- before
negative operands).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := mpir.FromString(args[0], opts.base)
			if err != nil {
				return err
			}
			defer a.Close()
			b, err := mpir.FromString(args[2], opts.base)
			if err != nil {
				return err
			}
			defer b.Close()

			var z *mpir.Int
			switch op := args[1]; op {
			case "+":
				z = a.Add(b)
			case "-":
				z = a.Sub(b)
			case "x", "*":
				z = a.Mul(b)
			case "/":
				z, err = a.Quo(b)
			case "%":
				z, err = a.Rem(b)
			case "mod":
				z, err = a.Mod(b)
			case "gcd":
				z = a.GCD(b)
			case "lcm":
				z = a.LCM(b)
			case "pow":
				e, ok := b.Uint64()
				if !ok {
					return fmt.Errorf("exponent %s does not fit in uint64", args[2])
				}
				z = a.Pow(e)
			case "cmp":
				fmt.Fprintln(cmd.OutOrStdout(), a.Cmp(b))
				return nil
			default:
				return fmt.Errorf("unknown operator %q", op)
			}
			if err != nil {
				return err
			}
			defer z.Close()

			s, err := z.Text(opts.base)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newFibCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fib N",
		Short: "Compute the N-th Fibonacci number (engine smoke test)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid N %q: %w", args[0], err)
			}

			log := opts.logger()
			start := time.Now()

			a, b := mpir.FromInt64(0), mpir.FromInt64(1)
			for i := uint64(0); i < n; i++ {
				next := a.Add(b)
				a.Close()
				a, b = b, next
			}
			b.Close()
			defer a.Close()

			log.Debug(cmd.Context(), "fibonacci computed",
				slog.Uint64("n", n),
				slog.Int("bits", a.BitLen()),
				slog.Duration("elapsed", time.Since(start)),
				slog.String("engine", mpir.EngineVersion()),
				logging.Abbrev(a.String()),
			)
			fmt.Fprintln(cmd.OutOrStdout(), a.String())
			return nil
		},
	}
}
