package cli

import (
	"context"
	"embed"
	"io/fs"

	"github.com/arthur-debert/almanac/internal/version"
	"github.com/arthur-debert/almanac/pkg/cobrax/topics"
	"github.com/arthur-debert/almanac/pkg/config"
	"github.com/arthur-debert/almanac/pkg/errors"
	"github.com/arthur-debert/almanac/pkg/logging"
	"github.com/arthur-debert/almanac/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// app holds what PersistentPreRunE resolves for the subcommands
type app struct {
	verbosity  int
	configFile string
	format     string
	workers    int
	strict     bool
	noColor    bool

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}
	rootCmd := &cobra.Command{
		Use:     "almanac",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(logging.Options{
				Verbosity: a.verbosity,
				NoColor:   a.noColor,
				Console:   cmd.ErrOrStderr(),
			})
			logging.LogCommand(cmd.CommandPath(), args)
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&a.format, "format", "f", "auto", MsgFlagFormat)
	flags.IntVarP(&a.workers, "workers", "w", 1, MsgFlagWorkers)
	flags.BoolVar(&a.strict, "strict", true, MsgFlagStrict)
	flags.BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)
	flags.StringVarP(&a.configFile, "config", "c", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSolveCmd(a))
	rootCmd.AddCommand(newTraceCmd(a))
	rootCmd.AddCommand(newRangesCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	topicsFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, topicsFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// loadConfig layers explicitly set flags over the configuration files and
// environment
func (a *app) loadConfig(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("format") {
		overrides["output.format"] = a.format
	}
	if flags.Changed("workers") {
		overrides["query.workers"] = a.workers
	}
	if flags.Changed("strict") {
		overrides["parse.strict"] = a.strict
	}
	if a.noColor {
		overrides["output.color"] = false
	}

	cfg, err := config.Load(config.Options{
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// renderer builds the output renderer for cmd from the loaded configuration
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout(), a.cfg.Output.Color)
}

// Execute runs the root command and reports any error on stderr in the
// requested output format. It returns the process exit code.
func Execute(ctx context.Context, rootCmd *cobra.Command) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	format, perr := ui.ParseFormat(rootCmd.PersistentFlags().Lookup("format").Value.String())
	if perr != nil {
		format = ui.FormatText
	}
	noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
	r, rerr := ui.NewRenderer(format, rootCmd.ErrOrStderr(), !noColor)
	if rerr != nil {
		r, _ = ui.NewRenderer(ui.FormatText, rootCmd.ErrOrStderr(), false)
	}
	_ = r.RenderError(err)

	log.Debug().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Command failed")
	return 1
}
