package cmd

import (
	"os"
	"os/signal"
	"syscall"

	logging "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"personalityPairing/pkg/dashboard"
	"personalityPairing/pkg/telegram"
)

var telegramCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Starts a Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildServices(cmd.Context())
		if err != nil {
			return err
		}

		bot, err := telegram.BuildBot(dashboard.BuildRouter(s.recommend, s.charts))
		if err != nil {
			return err
		}
		go bot.Start()

		logging.Info("started telegram bot")

		waitForSignal(bot)

		return nil
	},
}

func initTelegramCmd() {
	rootCmd.AddCommand(telegramCmd)
}

func waitForSignal(server *telegram.Bot) {
	terminateSignals := make(chan os.Signal, 1)

	signal.Notify(terminateSignals, syscall.SIGINT, syscall.SIGTERM)

	s := <-terminateSignals
	logging.Infof("Got one of stop signals, shutting down gracefully, SIGNAL NAME : %v", s)
	server.Stop()
}
