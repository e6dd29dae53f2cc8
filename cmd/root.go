package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	adminCmd "github.com/readify/shop/admin/cmd"
	cartCmd "github.com/readify/shop/cart/cmd"
	"github.com/readify/shop/internal/constants"
	"github.com/readify/shop/internal/log"
	productCmd "github.com/readify/shop/product/cmd"
)

func Start() {
	logger := log.Get("/var/log/readify-shop.log", os.Getenv("APP_ENV")).
		With().
		Str(log.KeyAppName, constants.AppMainShop).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: constants.AppMainShop}
	commands := []*cobra.Command{
		{
			Use:   "cart",
			Short: "Run cart service",
			Run: func(cmd *cobra.Command, args []string) {
				cartCmd.RunCartService(cmd.Context())
			},
		},
		{
			Use:   "product",
			Short: "Run product service",
			Run: func(cmd *cobra.Command, args []string) {
				productCmd.RunProductService(cmd.Context())
			},
		},
		{
			Use:   "admin",
			Short: "Run admin service",
			Run: func(cmd *cobra.Command, args []string) {
				adminCmd.RunAdminService(cmd.Context())
			},
		},
	}
	rootCmd.AddCommand(commands...)
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
