package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that mirror global flags,
// e.g. BUILDARRAY_FORMAT=json or BUILDARRAY_NO_COLOR=1.
const EnvPrefix = "BUILDARRAY"

// IDGenerator produces trace ids for JSON responses.
type IDGenerator interface {
	Generate() string
}

type uuidGenerator struct{}

func (uuidGenerator) Generate() string { return uuid.NewString() }

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	NoColor bool

	IDs    IDGenerator  // trace ids; nil leaves trace_id empty
	Logger *slog.Logger // set in PersistentPreRunE; nil until then
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the buildarray CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{IDs: uuidGenerator{}})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "buildarray",
		Short: "Build fixed-length containers from mixed scalars",
		Long: `Build fixed-length containers from arguments of different scalar types.

The element type is the common type of all arguments, resolved with the
usual arithmetic conversions: any float wins over integers, narrow integers
promote to int32, and mixed signedness follows rank. Strings never unify
with numbers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}
			opts.Verbose = v.GetBool("verbose")
			opts.Format = v.GetString("format")
			opts.NoColor = v.GetBool("no-color")

			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.NoColor {
				color.NoColor = true
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	// Add subcommands
	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewBuildCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// newLogger returns a slog logger backed by charmbracelet/log. Diagnostics
// below Warn are shown only in verbose mode.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "buildarray",
	})
	return slog.New(handler)
}

// loggerOf returns opts.Logger, or a discarding logger when a command runs
// without the root command's pre-run hook (as in unit tests).
func loggerOf(opts *RootOptions) *slog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
