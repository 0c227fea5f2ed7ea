// Command restore replaces the configured database's contents with a backup
// file produced by the backup command or GET /api/export.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/resourceflow/resourceflow/internal/config"
	"github.com/resourceflow/resourceflow/internal/database"
	"github.com/resourceflow/resourceflow/pkg/allocation"
	"github.com/resourceflow/resourceflow/pkg/holiday"
	"github.com/resourceflow/resourceflow/pkg/member"
	"github.com/resourceflow/resourceflow/pkg/project"
	"github.com/resourceflow/resourceflow/pkg/settings"
	"github.com/resourceflow/resourceflow/pkg/transfer"
	"github.com/resourceflow/resourceflow/pkg/vacation"
	log "github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: restore <backup-file.json>")
	}
	backupPath := os.Args[1]

	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	file, err := os.Open(backupPath)
	if err != nil {
		log.Fatalf("failed to open backup file: %v", err)
	}
	defer file.Close()

	var envelope transfer.Envelope
	if err := json.NewDecoder(file).Decode(&envelope); err != nil {
		log.Fatalf("failed to parse backup file: %v", err)
	}

	transferService := transfer.NewTransferService(
		db,
		member.NewMemberRepo(db),
		project.NewProjectRepo(db),
		holiday.NewHolidayRepo(db),
		vacation.NewVacationRepo(db),
		allocation.NewAllocationRepo(db),
		settings.NewSettingsRepo(db),
	)

	if err := transferService.Import(context.Background(), envelope); err != nil {
		log.Fatalf("failed to restore backup: %v", err)
	}

	log.Infof("restored snapshot %s from %s", envelope.SnapshotId, backupPath)
}
