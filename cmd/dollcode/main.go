package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dollcode/go-dollcode/cmd/dollcode/tui"
	"github.com/dollcode/go-dollcode/dollcode"
)

var (
	// Global flags
	verbose  bool
	modeFlag string
	plain    bool

	// Logger
	logger *zap.Logger
)

// rootCmd converts its argument (or stdin) and prints the result; with
// no argument and a terminal attached it starts the interactive UI.
var rootCmd = &cobra.Command{
	Use:   "dollcode [input]",
	Short: "dollcode - trinary converter for numbers and text",
	Long: `dollcode converts between decimal, hex, ASCII text, and the dollcode
trinary representation (▖ ▘ ▌, bijective base-3).

Input mode is auto-detected: dollcode glyphs decode back to decimal or
text, a 0x prefix parses as hex, all-digit input parses as decimal, and
anything else encodes as text. Use --mode to force a specific codec.

Run without arguments to start the interactive converter.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if stdinIsPipe() {
				return convertStdin(cmd)
			}
			return tui.Run()
		}
		return convertOne(cmd, args[0])
	},
}

// convertCmd is the explicit one-shot form, useful in scripts where an
// argument starting with a dash or matching a subcommand name would
// confuse the root command.
var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert a single value and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertOne(cmd, args[0])
	},
}

// modesCmd documents the classification rules.
var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Show input modes and their detection rules",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), `Input modes, checked in order:

  dollcode  input contains a dollcode glyph (▖ ▘ ▌) or the segment
            delimiter; decodes to decimal (numeric form) or ASCII
            text (text form, delimiter-separated segments)
  hex       0x or 0X prefix, 1-16 hex digits
  decimal   decimal digits only, value up to 2^64-1
  text      anything else; up to 100 printable ASCII characters
`)
	},
}

func convertOne(cmd *cobra.Command, input string) error {
	res, err := convertWithMode(input)
	if err != nil {
		logger.Debug("conversion failed", zap.String("input", input), zap.Error(err))
		return renderError(cmd, err)
	}
	logger.Debug("converted",
		zap.String("mode", res.Mode.String()),
		zap.Int("output_len", len(res.Output)))
	fmt.Fprintln(cmd.OutOrStdout(), renderResult(res, plain))
	return nil
}

func convertStdin(cmd *cobra.Command) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		if err := convertOne(cmd, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// convertWithMode honors --mode when set, otherwise auto-detects.
func convertWithMode(input string) (dollcode.Result, error) {
	switch modeFlag {
	case "", "auto":
		return dollcode.Convert(input)
	case "decimal":
		out, err := dollcode.ConvertDecimal(input)
		return dollcode.Result{Mode: dollcode.ModeDecimal, Output: out}, err
	case "hex":
		out, err := dollcode.ConvertHex(input)
		return dollcode.Result{Mode: dollcode.ModeHex, Output: out}, err
	case "text":
		out, err := dollcode.ConvertText(input)
		return dollcode.Result{Mode: dollcode.ModeText, Output: out}, err
	case "dollcode":
		out, err := dollcode.ConvertDollcode(input)
		return dollcode.Result{Mode: dollcode.ModeDollcode, Output: out}, err
	default:
		return dollcode.Result{}, fmt.Errorf("unknown mode %q (want auto, decimal, hex, text, or dollcode)", modeFlag)
	}
}

// errConversionFailed marks errors whose message was already rendered.
var errConversionFailed = errors.New("conversion failed")

func renderError(cmd *cobra.Command, err error) error {
	if plain {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), tui.ErrorStyle.Render(userMessage(err)))
	return errConversionFailed
}

// userMessage folds the typed error taxonomy into the user-facing
// categories the interface promises.
func userMessage(err error) string {
	var (
		ice *dollcode.InvalidCharError
		se  *dollcode.SegmentError
		le  *dollcode.LengthError
		boe *dollcode.BufferOverflowError
	)
	switch {
	case errors.Is(err, dollcode.ErrEmptyInput):
		return "nothing to convert"
	case errors.Is(err, dollcode.ErrNumericOverflow):
		return "limit exceeded: value does not fit in 64 bits"
	case errors.Is(err, dollcode.ErrHexPrefix):
		return "invalid hex: expected a 0x prefix"
	case errors.As(err, &le):
		return fmt.Sprintf("limit exceeded: input length %d over limit %d", le.Actual, le.Limit)
	case errors.As(err, &boe):
		return fmt.Sprintf("limit exceeded: output over %d bytes", boe.Limit)
	case errors.As(err, &ice):
		return fmt.Sprintf("invalid character %q at position %d", ice.Rune, ice.Pos)
	case errors.As(err, &se):
		return fmt.Sprintf("invalid character: segment %d is not printable text", se.Seg)
	default:
		return err.Error()
	}
}

// renderResult formats a conversion for terminal output. Numeric
// dollcode input shows decimal and hex side by side, the way the
// original converter did.
func renderResult(res dollcode.Result, plain bool) string {
	if res.Numeric {
		line := fmt.Sprintf("d:%s h:%s", res.Output, dollcode.FormatHex(res.Value))
		if plain {
			return line
		}
		return tui.ResultStyle.Render(line)
	}
	if plain {
		return res.Output
	}
	return tui.ResultStyle.Render(res.Output)
}

func stdinIsPipe() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&modeFlag, "mode", "m", "auto", "input mode: auto, decimal, hex, text, dollcode")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "unstyled output, suitable for pipes")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(modesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errConversionFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
