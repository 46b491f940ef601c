package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/minimartlabs/minimart/internal/constants"
	"github.com/minimartlabs/minimart/internal/log"
)

func Start() {
	logger := log.InitLogger("/var/log/minimart.log").
		With().
		Str(log.KeyAppName, constants.AppMinimart).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: constants.AppMinimart}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "server",
		Short: "Run the minimart http server",
		Run: func(cmd *cobra.Command, args []string) {
			RunServer(cmd.Context())
		},
	})
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
