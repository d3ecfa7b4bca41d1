package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mapforge/mapforge/pkg/pipeline"
	"github.com/mapforge/mapforge/pkg/render"
)

// compileOpts holds the command-line flags for the compile command.
type compileOpts struct {
	output string // output file path (stdout if empty)
	dim    int    // pixel dimension of one grid cell
	theme  string // path to a TOML theme file
}

// newCompileCmd creates the compile command. It reads a map description
// from a file argument or stdin and writes the rendered SVG.
func newCompileCmd() *cobra.Command {
	opts := compileOpts{dim: render.DefaultCellSize}

	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile a map description to an SVG document",
		Long:  `Compile reads a map description from the given file, or from stdin when the argument is omitted or "-", and writes the rendered SVG to stdout or the --output path.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runCompile(cmd, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().IntVar(&opts.dim, "dim", opts.dim, "pixel size of one grid cell")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file overriding the default colours")

	return cmd
}

func runCompile(cmd *cobra.Command, input string, opts *compileOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	source, err := readSource(input)
	if err != nil {
		return err
	}

	pipelineOpts := pipeline.Options{
		Source:   string(source),
		CellSize: opts.dim,
		Logger:   logger,
	}
	if opts.theme != "" {
		theme, err := render.LoadTheme(opts.theme)
		if err != nil {
			return err
		}
		pipelineOpts.Theme = &theme
	}

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, pipelineOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Compiled %s", displayName(input)))

	if opts.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), result.SVG)
	} else {
		if err := os.WriteFile(opts.output, []byte(result.SVG), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		printSuccess("Wrote %s", displayName(input))
		printFile(opts.output)
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.EntityCount)

	return nil
}

// readSource reads the description from path, or from stdin for "-".
func readSource(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read description: %w", err)
	}
	return data, nil
}

func displayName(input string) string {
	if input == "-" {
		return "stdin"
	}
	return input
}
