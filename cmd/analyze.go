package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quether/talentgap/internal/adapters/catalog"
	service "github.com/quether/talentgap/internal/app"
	"github.com/quether/talentgap/internal/config"
	"github.com/quether/talentgap/internal/domain/analyzer"
	"github.com/quether/talentgap/pkg/logger"
)

const reportFilePermission = 0o600

var (
	orgPath     string
	outlookPath string
	outputPath  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full analysis over an organization catalog",
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

		cat, err := catalog.LoadOrg(orgPath)
		if err != nil {
			return err
		}
		var outlook []analyzer.DemandRecord
		if outlookPath != "" {
			if outlook, err = catalog.LoadOutlook(outlookPath); err != nil {
				return err
			}
		}

		opts, err := service.FromConfig(cfg)
		if err != nil {
			return err
		}
		opts = append(opts, service.WithDemandOutlook(outlook))

		svc := service.New(cat, opts...)
		report, err := svc.Analyze(ctx)
		if err != nil {
			return err
		}
		return writeReport(report)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&orgPath, "org", "", "organization catalog JSON file (required)")
	analyzeCmd.Flags().StringVar(&outlookPath, "outlook", "", "demand outlook JSON file")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
	_ = analyzeCmd.MarkFlagRequired("org")
}

func writeReport(report *service.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputPath, data, reportFilePermission); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Printf("report written to %s\n", outputPath)
	return nil
}
