package cli

import (
	"github.com/arthur-debert/almanac/pkg/almanac"
	"github.com/spf13/cobra"
)

// stdinArg selects standard input in place of a file
const stdinArg = "-"

// readAlmanac parses the file named by arg, or standard input for "-"
func (a *app) readAlmanac(cmd *cobra.Command, arg string, strict bool) (*almanac.Almanac, error) {
	opts := almanac.ParseOptions{Strict: strict}
	if arg == stdinArg {
		return almanac.Parse(cmd.InOrStdin(), opts)
	}
	return almanac.ParseFile(arg, opts)
}

// almanacFileCompletion offers files for the FILE argument only
func almanacFileCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveDefault
}
