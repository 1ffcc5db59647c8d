package cli

import (
	"strconv"

	"github.com/arthur-debert/almanac/pkg/errors"
	"github.com/arthur-debert/almanac/pkg/logging"
	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "solve FILE|-",
		Short:             MsgSolveShort,
		Long:              MsgSolveLong,
		Example:           MsgSolveExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: almanacFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.solve")

			alm, err := a.readAlmanac(cmd, args[0], a.cfg.Parse.Strict)
			if err != nil {
				return err
			}
			report, err := alm.Solve(cmd.Context(), a.cfg.Query.Workers)
			if err != nil {
				return err
			}
			logger.Info().
				Uint64("point", report.PointMinimum).
				Uint64("range", report.RangeMinimum).
				Int("workers", a.cfg.Query.Workers).
				Msg("Solved almanac")

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(report)
		},
	}
}

func newTraceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "trace FILE|- [SEED...]",
		Short:             MsgTraceShort,
		Long:              MsgTraceLong,
		Example:           MsgTraceExample,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: almanacFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := parseSeedArgs(args[1:])
			if err != nil {
				return err
			}

			alm, err := a.readAlmanac(cmd, args[0], a.cfg.Parse.Strict)
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(alm.Trace(seeds...))
		},
	}
}

func parseSeedArgs(args []string) ([]uint64, error) {
	seeds := make([]uint64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSeedParse, "seed %q is not an unsigned integer", arg).
				WithDetail("value", arg)
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}

func newRangesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "ranges FILE|-",
		Short:             MsgRangesShort,
		Long:              MsgRangesLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: almanacFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			alm, err := a.readAlmanac(cmd, args[0], a.cfg.Parse.Strict)
			if err != nil {
				return err
			}
			report, err := alm.Ranges(cmd.Context(), a.cfg.Query.Workers)
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(report)
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "check FILE|-",
		Short:             MsgCheckShort,
		Long:              MsgCheckLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: almanacFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			// overlaps are reported, not rejected
			alm, err := a.readAlmanac(cmd, args[0], false)
			if err != nil {
				return err
			}
			report := alm.Check()

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			if err := r.RenderResult(report); err != nil {
				return err
			}
			if !report.Valid {
				return errors.New(errors.ErrInvalidInput, MsgCheckFailed)
			}
			return nil
		},
	}
}
