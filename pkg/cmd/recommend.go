package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"personalityPairing/pkg/dashboard"
	"personalityPairing/pkg/logging"
)

var recommendType string

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Prints songs and wines for a personality type",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithTrackingId(cmd.Context())

		s, err := buildServices(ctx)
		if err != nil {
			return err
		}

		rec, err := s.recommend.Recommend(ctx, recommendType)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), dashboard.FormatRecommendation(rec))

		return nil
	},
}

func initRecommendCmd() {
	recommendCmd.Flags().StringVarP(&recommendType, "type", "t", "INFP", "personality type code")
	rootCmd.AddCommand(recommendCmd)
}
