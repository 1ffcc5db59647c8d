package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Find the lowest seed location in an almanac"
	MsgSolveShort      = "Answer both location queries"
	MsgTraceShort      = "Show each stage's value for single seeds"
	MsgRangesShort     = "List the location intervals of every seed range"
	MsgCheckShort      = "Validate an almanac and summarise its stages"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgGenConfigShort  = "Print the effective configuration as TOML"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Print the manual page"

	MsgCheckFailed = "almanac did not pass validation"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Output format (auto, term, text, json, yaml, xml, table)"
	MsgFlagWorkers  = "Seed ranges resolved concurrently"
	MsgFlagStrict   = "Reject stages with overlapping rules"
	MsgFlagNoColor  = "Disable colored output"
	MsgFlagConfig   = "Config file to use instead of $XDG_CONFIG_HOME/almanac/config.toml"
	MsgFlagDefaults = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/solve-long.txt
	msgSolveLongRaw string
	MsgSolveLong    = strings.TrimSpace(msgSolveLongRaw)

	//go:embed msgs/solve-example.txt
	msgSolveExampleRaw string
	MsgSolveExample    = strings.TrimRight(msgSolveExampleRaw, "\n")

	//go:embed msgs/trace-long.txt
	msgTraceLongRaw string
	MsgTraceLong    = strings.TrimSpace(msgTraceLongRaw)

	//go:embed msgs/trace-example.txt
	msgTraceExampleRaw string
	MsgTraceExample    = strings.TrimRight(msgTraceExampleRaw, "\n")

	//go:embed msgs/ranges-long.txt
	msgRangesLongRaw string
	MsgRangesLong    = strings.TrimSpace(msgRangesLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
