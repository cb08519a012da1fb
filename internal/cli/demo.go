package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/buildarray/internal/scalar"
	"github.com/roach88/buildarray/internal/unify"
)

// Demo builds the demonstration container from (1, 0u, 'a', 3.2f, false).
// It resolves to float32 and renders as "1 0 97 3.2 0".
func Demo() unify.Container {
	return unify.Build(
		scalar.Of(1),
		scalar.Of(uint32(0)),
		scalar.Of('a'),
		scalar.Of(float32(3.2)),
		scalar.Of(false),
	)
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the demonstration container",
		Long: `Build a container from (1, 0u, 'a', 3.2f, false) and print its elements.

The common type is float32, so the output is "1 0 97 3.2 0".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			c := Demo()
			loggerOf(rootOpts).Debug("built demo container", "kind", c.Kind(), "len", c.Len())
			return formatter.Success(newContainerOutput(c))
		},
	}
}
