package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tellerbank/teller/internal/config"
	"github.com/tellerbank/teller/internal/service"
	"github.com/tellerbank/teller/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	DataDir string
}

// NewApp initialize config, database and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dataDir, err := GetAppDataDir()
	if err != nil {
		return nil, nil, err
	}

	dbPathRaw := cfg.Database.Path
	if dbPathRaw == "" {
		dbPathRaw = filepath.Join(dataDir, "teller.db")
	}

	dbStore, err := store.NewStore(dbPathRaw, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewService(dbStore, cfg)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		DataDir: dataDir,
	}, cleanup, nil
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".teller"), nil
	}

	return filepath.Join(configDir, "teller"), nil
}
