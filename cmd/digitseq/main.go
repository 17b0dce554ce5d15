// Command digitseq is a small front-end over the digitseq library:
// it parses digit strings, decomposes integers into digit sequences,
// and reconstructs integers from digit strings with a chosen width.
//
// Results go to stdout; diagnostics go to stderr.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	num "github.com/shabbyrobe/go-num"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/katalvlaran/digitseq"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
}

var exampleUsage = strings.TrimSpace(`
  digitseq parse 09240
  digitseq decompose 340282366920938463463374607431768211455
  digitseq reconstruct 0255 --bits 16
`)

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:           "digitseq",
		Short:         "Convert between integers, digit strings and digit sequences",
		Example:       exampleUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				logger = logger.Level(zerolog.DebugLevel)
			}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				logger.Debug().Str("flag", f.Name).Str("value", f.Value.String()).Msg("flag set")
			})
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newParseCmd(), newDecomposeCmd(), newReconstructCmd())

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// newParseCmd validates a digit string and prints its JSON array form.
func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TEXT",
		Short: "Parse a digit string into a digit sequence (JSON array form)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := digitseq.Parse(args[0])
			if err != nil {
				return err
			}
			data, err := json.Marshal(s)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return nil
		},
	}
}

// newDecomposeCmd decomposes an integer of up to 128 bits into its
// digit sequence. Negative input is routed through the signed
// decomposition so it fails with the library's negative-number error.
func newDecomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose INTEGER",
		Short: "Decompose an integer (up to 128 bits) into its digit sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := args[0]

			var (
				s   digitseq.Sequence
				err error
			)
			if strings.HasPrefix(arg, "-") {
				var v int64
				if v, err = strconv.ParseInt(arg, 10, 64); err != nil {
					return fmt.Errorf("not a signed 64-bit integer: %q", arg)
				}
				if s, err = digitseq.FromInt(v); err != nil {
					return err
				}
			} else {
				u, accurate, err := num.U128FromString(arg)
				if err != nil {
					return fmt.Errorf("not an unsigned integer: %q", arg)
				}
				if !accurate {
					return fmt.Errorf("value does not fit in 128 bits: %q", arg)
				}
				s = digitseq.FromUint128(u)
			}
			logger.Debug().Int("digits", s.Len()).Msg("decomposed")

			data, err := json.Marshal(s)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return nil
		},
	}
}

// newReconstructCmd parses a digit string and reconstructs the integer
// value at the requested unsigned width.
func newReconstructCmd() *cobra.Command {
	var bits int

	cmd := &cobra.Command{
		Use:   "reconstruct TEXT",
		Short: "Reconstruct an unsigned integer from a digit string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := digitseq.Parse(args[0])
			if err != nil {
				return err
			}

			var out string
			switch bits {
			case 8:
				v, err := digitseq.ToUint[uint8](s)
				if err != nil {
					return err
				}
				out = strconv.FormatUint(uint64(v), 10)
			case 16:
				v, err := digitseq.ToUint[uint16](s)
				if err != nil {
					return err
				}
				out = strconv.FormatUint(uint64(v), 10)
			case 32:
				v, err := digitseq.ToUint[uint32](s)
				if err != nil {
					return err
				}
				out = strconv.FormatUint(uint64(v), 10)
			case 64:
				v, err := digitseq.ToUint[uint64](s)
				if err != nil {
					return err
				}
				out = strconv.FormatUint(v, 10)
			case 128:
				v, err := digitseq.ToUint128(s)
				if err != nil {
					return err
				}
				out = v.String()
			default:
				return fmt.Errorf("unsupported width: %d bits (want 8, 16, 32, 64 or 128)", bits)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 64, "target unsigned width in bits (8, 16, 32, 64, 128)")

	return cmd
}
