package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-cadence-keys/internal/config"
	"github.com/MKhiriev/go-cadence-keys/internal/handler"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/server"
	"github.com/MKhiriev/go-cadence-keys/internal/service"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	root := &cobra.Command{
		Use:          "cadence-server",
		Short:        "Reference backend storing encrypted activities and notes",
		SilenceUsage: true,
	}
	flagCfg := config.BindFlags(root.PersistentFlags())

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), flagCfg, buildInfo)
		},
	}
	root.RunE = serve.RunE

	var userID int64
	token := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToken(cmd, flagCfg, userID)
		},
	}
	token.Flags().Int64Var(&userID, "user-id", 0, "user the token is issued for")
	_ = token.MarkFlagRequired("user-id")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
		},
	}

	root.AddCommand(serve, token, version)
	return root
}

func runServe(ctx context.Context, flagCfg *config.StructuredConfig, buildInfo models.AppBuildInfo) error {
	log := logger.NewLogger("cadence-server")
	log.Info().Str("version", buildInfo.BuildVersion()).Str("commit", buildInfo.BuildCommit()).Msg("starting")

	cfg, err := config.GetServerConfigFromFlags(flagCfg)
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return err
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, buildInfo, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	srv.RunServer()
	return nil
}

// runToken needs only the signing settings, so it skips the storage and
// listener checks of the full server config.
func runToken(cmd *cobra.Command, flagCfg *config.StructuredConfig, userID int64) error {
	cfg, err := config.GetServerConfigFromFlags(flagCfg)
	if cfg == nil {
		return err
	}
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return config.ErrInvalidAppConfigs
	}

	auth := service.NewAuthService(cfg.App, logger.Nop())
	token, err := auth.CreateToken(cmd.Context(), userID)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token.String())
	return nil
}
