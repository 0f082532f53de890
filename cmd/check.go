package cmd

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/concepts/internal/conceptcheck"
)

var (
	caseFile string
	runGlob  string
	workDir  string
	jobs     int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Type-check each case and compare with its expected verdict",
	Long: `Type-check each case and compare with its expected verdict.

Cases come from the built-in table unless --file names a YAML file. The
command fails when any verdict differs from the expectation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cases := conceptcheck.DefaultCases()
		if caseFile != "" {
			var err error
			if cases, err = conceptcheck.LoadCaseFile(caseFile); err != nil {
				return err
			}
		}
		cases, err := conceptcheck.Filter(cases, runGlob)
		if err != nil {
			return err
		}
		if len(cases) == 0 {
			slog.WarnContext(ctx, "no cases selected", slog.String("run", runGlob))
			return nil
		}

		checker, err := conceptcheck.New(ctx, conceptcheck.Config{
			Dir:     workDir,
			Imports: conceptcheck.Imports(cases),
			Jobs:    jobs,
		})
		if err != nil {
			return err
		}
		results, err := checker.Run(ctx, cases)
		if err != nil {
			return err
		}

		failed, err := conceptcheck.WriteTable(cmd.OutOrStdout(), results)
		if err != nil {
			return err
		}
		slog.DebugContext(ctx, "check finished", slog.Int("cases", len(results)), slog.Int("failed", failed))
		if failed > 0 {
			return errors.Errorf("%d of %d cases disagree with the type checker", failed, len(results))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&caseFile, "file", "f", "", "YAML case file (default: built-in cases)")
	checkCmd.Flags().StringVar(&runGlob, "run", "", "Only run cases whose name matches this glob, e.g. 'odd/*'")
	checkCmd.Flags().StringVar(&workDir, "dir", "", "Directory inside the concepts module (default: current directory)")
	checkCmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Cases checked in parallel (default: number of CPUs)")
	rootCmd.AddCommand(checkCmd)
}
