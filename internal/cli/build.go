package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/buildarray/internal/literal"
	"github.com/roach88/buildarray/internal/unify"
)

// ContainerOutput is the JSON rendering of a built container.
type ContainerOutput struct {
	Kind     string `json:"kind"`
	Len      int    `json:"len"`
	Elements []any  `json:"elements"`
	Output   string `json:"output"`
	Digest   string `json:"digest"`
}

func newContainerOutput(c unify.Container) ContainerOutput {
	return ContainerOutput{
		Kind:     c.Kind().String(),
		Len:      c.Len(),
		Elements: c.JSONElements(),
		Output:   c.String(),
		Digest:   c.Digest(),
	}
}

// String renders the container the way the demo prints it.
func (o ContainerOutput) String() string { return o.Output }

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <literal>...",
		Short: "Build a container from literal arguments",
		Long: `Build a container from literal arguments and print it.

Literals follow Go and C conventions: 1, 0u, 7ull, 0x1f, 3.2, 3.2f,
'a', true, "text", and conversions such as int8(-1) or uint16(7).
Quote character literals for the shell: buildarray build "'a'".

Exit codes:
  0 - Container built
  2 - Invalid literal or no common type

Examples:
  buildarray build 1 0u "'a'" 3.2f false
  buildarray build --format json "int8(1)" "uint16(2)"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runBuild(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := loggerOf(opts)

	vals, err := literal.ParseAll(args)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidLiteral, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeInvalidLiteral, err)
	}

	c, err := unify.BuildAny(vals...)
	if err != nil {
		var nct *unify.NoCommonTypeError
		if errors.As(err, &nct) {
			_ = formatter.Error(ErrCodeNoCommonType, err.Error(), map[string]any{
				"index": nct.Index,
				"type":  nct.Type,
			})
			return WrapExitError(ExitCommandError, ErrCodeNoCommonType, err)
		}
		return fmt.Errorf("build failed: %w", err)
	}

	logger.Debug("built container", "kind", c.Kind(), "len", c.Len(), "digest", c.Digest())
	formatter.VerboseLog("common type: %s", c.Kind())
	return formatter.Success(newContainerOutput(c))
}
