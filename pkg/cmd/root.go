package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pairing",
	Short: "Pairs a personality type with songs, a wine variety and charts of both datasets",
}

func Execute() error {
	initVersionCmd()
	initProfilesCmd()
	initRecommendCmd()
	initChartCmd()
	initTelegramCmd()

	return rootCmd.Execute()
}
