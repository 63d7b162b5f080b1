package main

import (
	"fmt"

	"github.com/spf13/cobra"

	service "github.com/quether/talentgap/internal/app"
	"github.com/quether/talentgap/internal/config"
	"github.com/quether/talentgap/internal/fixture"
	"github.com/quether/talentgap/pkg/logger"
)

var (
	demoSeed      int64
	demoEmployees int
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the analysis over a generated synthetic organization",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load(ctx)
		if err != nil {
			return err
		}
		if err := logger.SetLevelString(cfg.LogLevel); err != nil {
			logger.Get().Warn(ctx, "invalid log_level, falling back to info",
				logger.String("log_level", cfg.LogLevel))
		}

		cat := fixture.Generate(demoSeed, demoEmployees)
		opts, err := service.FromConfig(cfg)
		if err != nil {
			return err
		}
		opts = append(opts, service.WithDemandOutlook(fixture.Outlook()))

		svc := service.New(cat, opts...)
		report, err := svc.Analyze(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("run %s\n", report.RunID)
		for _, line := range report.ExecutiveSummary {
			fmt.Printf("  - %s\n", line)
		}
		if outputPath != "" {
			return writeReport(report)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Int64Var(&demoSeed, "seed", 42, "seed for the synthetic organization")
	demoCmd.Flags().IntVar(&demoEmployees, "employees", fixture.DefaultEmployeeCount, "employee count for the synthetic organization")
	demoCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the full report to a file")
}
