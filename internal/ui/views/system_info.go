package views

import (
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	DBPath          string
	DBExists        bool
	DefaultCurrency string
	AppDataDir      string
	AuditRejected   bool
}

func RenderSystemInfo(items SystemInfoItem) error {
	dbStatus := "missing (created on first use)"
	if items.DBExists {
		dbStatus = "present"
	}

	audit := "off"
	if items.AuditRejected {
		audit = "on"
	}

	tableData := pterm.TableData{
		{"Config file", items.ConfigPath},
		{"Database", items.DBPath},
		{"Database status", dbStatus},
		{"Display currency", items.DefaultCurrency},
		{"Rejected-tx audit", audit},
		{"App data dir", items.AppDataDir},
	}

	pterm.DefaultSection.Printf("System Info")
	return pterm.DefaultTable.WithData(tableData).Render()
}
