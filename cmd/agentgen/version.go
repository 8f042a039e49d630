package main

import (
	"fmt"

	"github.com/agentgenesis/api/internal/models"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "agentgen version %s\n", models.Version)
	},
}
