package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-cadence-keys/internal/adapter"
	"github.com/MKhiriev/go-cadence-keys/internal/config"
	"github.com/MKhiriev/go-cadence-keys/internal/keystore"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/service"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/internal/utils"
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

// app is the client runtime shared by every subcommand.
type app struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	backend  adapter.BackendAdapter
	storages *store.ClientStorages
	services *service.ClientServices
}

func newApp(ctx context.Context, flagCfg *config.StructuredConfig) (*app, error) {
	log := logger.NewClientLogger("cadence-client")

	cfg, err := config.GetClientConfig(flagCfg)
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return nil, err
	}

	ring, err := keystore.OpenKeyring(cfg.Keyring)
	if err != nil {
		log.Err(err).Msg("error opening keyring")
		return nil, err
	}

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("error creating backend adapter")
		return nil, err
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating local storage")
		return nil, err
	}

	return &app{
		cfg:      cfg,
		log:      log,
		backend:  backend,
		storages: storages,
		services: service.NewClientServices(keystore.NewKeyringStore(ring, log), backend, storages, log),
	}, nil
}

// userID is the subject of the configured bearer token.
func (a *app) userID() (int64, error) {
	userID, err := utils.ParseUserIDFromJWT(a.backend.Token())
	if err != nil {
		return 0, fmt.Errorf("read user from token: %w", err)
	}
	return userID, nil
}

func (a *app) close() {
	if err := a.storages.Close(); err != nil {
		a.log.Err(err).Msg("error closing local storage")
	}
}

func newRootCmd() *cobra.Command {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var a *app
	root := &cobra.Command{
		Use:          "cadence",
		Short:        "Manage the end-to-end encryption key of this device",
		SilenceUsage: true,
	}
	flagCfg := config.BindFlags(root.PersistentFlags())

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if cmd.Annotations[annotationNoApp] != "" {
			return nil
		}
		var err error
		a, err = newApp(cmd.Context(), flagCfg)
		return err
	}
	root.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		if a != nil {
			a.close()
		}
	}

	// Subcommands reach the runtime through this getter; it is populated by
	// PersistentPreRunE before any RunE executes.
	getApp := func() *app { return a }

	root.AddCommand(
		newVersionCmd(buildInfo),
		newStatusCmd(getApp),
		newLinkCmd(getApp),
		newKeyCmd(getApp),
		newMigrateCmd(getApp),
		newActivitiesCmd(getApp),
		newNotesCmd(getApp),
		newCacheCmd(getApp),
	)

	return root
}
