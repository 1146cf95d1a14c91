package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"personalityPairing/pkg/dashboard"
	"personalityPairing/pkg/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Lists the personality types with their wine variety",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), dashboard.FormatProfiles(profile.All()))
	},
}

func initProfilesCmd() {
	rootCmd.AddCommand(profilesCmd)
}
