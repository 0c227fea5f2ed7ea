// Command backup writes a full JSON snapshot of the configured database to a
// timestamped file in the current directory (or the directory given as the
// first argument). The file uses the same envelope format as GET /api/export,
// so it can be restored either by the restore command or through the API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

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
	targetDir := "."
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	transferService := transfer.NewTransferService(
		db,
		member.NewMemberRepo(db),
		project.NewProjectRepo(db),
		holiday.NewHolidayRepo(db),
		vacation.NewVacationRepo(db),
		allocation.NewAllocationRepo(db),
		settings.NewSettingsRepo(db),
	)

	envelope, err := transferService.Export(context.Background())
	if err != nil {
		log.Fatalf("failed to export data: %v", err)
	}

	fileName := fmt.Sprintf("resourceflow-backup-%s.json", time.Now().Format("20060102-150405"))
	path := filepath.Join(targetDir, fileName)
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("failed to create backup file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(envelope); err != nil {
		log.Fatalf("failed to write backup file: %v", err)
	}

	log.Infof("backup written to %s (snapshot %s)", path, envelope.SnapshotId)
}
