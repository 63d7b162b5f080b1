// Command talentgap runs talent gap analysis over an organization catalog.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quether/talentgap/pkg/logger"
)

const app = "talentgap"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "talentgap scores employees against target roles and finds organizational skill gaps",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if cfgFile != "" {
			if err := os.Setenv("TALENTGAP_CONFIG", cfgFile); err != nil {
				return fmt.Errorf("set config path: %w", err)
			}
		}
		return logger.Init()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a YAML config file (overrides the TALENTGAP_CONFIG env var)")
}
