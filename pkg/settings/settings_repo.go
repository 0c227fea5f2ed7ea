package settings

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type SettingsRepo interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, settings Settings) error
}

type SettingsRepoImpl struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepoImpl {
	return &SettingsRepoImpl{db: db}
}

func (r SettingsRepoImpl) Get(ctx context.Context) (Settings, error) {
	query := `SELECT buffer_percent, canada_weekly_hours, brazil_weekly_hours FROM settings WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var settings Settings
	if err := row.Scan(
		&settings.BufferPercent,
		&settings.CanadaWeeklyHours,
		&settings.BrazilWeeklyHours,
	); err != nil {
		err := fmt.Errorf("could not scan settings: %w", err)
		log.Error(err)
		return Settings{}, err
	}
	return settings, nil
}

func (r SettingsRepoImpl) Update(ctx context.Context, settings Settings) error {
	query := `UPDATE settings SET
                  buffer_percent = ?,
                  canada_weekly_hours = ?,
                  brazil_weekly_hours = ?
              WHERE id = 1`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx,
		settings.BufferPercent,
		settings.CanadaWeeklyHours,
		settings.BrazilWeeklyHours,
	); err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}
