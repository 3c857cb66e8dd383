package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tellerbank/teller/internal/app"
	"github.com/tellerbank/teller/internal/ui/views"
)

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := application.Service.Config.ConfigPath
			if configPath == "" {
				configPath = "(None, using defaults)"
			}

			rawDBPath := application.Service.Config.Database.Path
			if rawDBPath == "" {
				rawDBPath = filepath.Join(application.DataDir, "teller.db")
			}
			expandedDBPath, err := expandPath(rawDBPath)
			if err != nil {
				return fmt.Errorf("bad database path %q: %w", rawDBPath, err)
			}

			dbExists := false
			if _, err := os.Stat(expandedDBPath); err == nil {
				dbExists = true
			}

			items := views.SystemInfoItem{
				ConfigPath:      configPath,
				DBPath:          expandedDBPath,
				DBExists:        dbExists,
				DefaultCurrency: application.Service.Config.Defaults.Currency,
				AppDataDir:      application.DataDir,
				AuditRejected:   application.Service.Config.Audit.RecordRejected,
			}

			return views.RenderSystemInfo(items)
		},
	}
}
