package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapforge/mapforge/pkg/generate"
	"github.com/mapforge/mapforge/pkg/lang"
)

// newCheckCmd creates the check command. It runs the parse and generate
// stages without rendering, so authors can validate a description quickly.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a map description and report diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runCheck(cmd, input)
		},
	}
}

func runCheck(cmd *cobra.Command, input string) error {
	source, err := readSource(input)
	if err != nil {
		return err
	}

	if cerr := checkSource(string(source)); cerr != nil {
		printError("%s", cerr)
		return fmt.Errorf("%s is invalid", displayName(input))
	}

	printSuccess("%s is valid", displayName(input))
	return nil
}

// checkSource compiles the description up to the generate stage.
func checkSource(source string) *lang.Error {
	ast, err := lang.Parse(source)
	if err != nil {
		return err
	}
	if _, err := generate.Map(ast); err != nil {
		return err
	}
	return nil
}

// diagnostic extracts the positioned diagnostic from a pipeline error,
// if it carries one.
func diagnostic(err error) (*lang.Error, bool) {
	var cerr *lang.Error
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}
