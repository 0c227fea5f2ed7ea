package holiday

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type HolidayRepo interface {
	Store(ctx context.Context, holiday Holiday) (int, error)
	GetAll(ctx context.Context) ([]Holiday, error)
	GetByYear(ctx context.Context, year int) ([]Holiday, error)
	Update(ctx context.Context, holiday Holiday) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type HolidayRepoImpl struct {
	db *sql.DB
}

func NewHolidayRepo(db *sql.DB) *HolidayRepoImpl {
	return &HolidayRepoImpl{db: db}
}

func (r HolidayRepoImpl) Store(ctx context.Context, holiday Holiday) (int, error) {
	query := `INSERT INTO holiday (name, date, country) VALUES (?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		holiday.Name,
		holiday.Date.Format(dateLayout),
		string(holiday.Country),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return 0, err
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}

	return int(lastInsertID), nil
}

func (r HolidayRepoImpl) GetAll(ctx context.Context) ([]Holiday, error) {
	query := `SELECT id, name, date, country FROM holiday ORDER BY date`
	return r.queryHolidays(ctx, query)
}

func (r HolidayRepoImpl) GetByYear(ctx context.Context, year int) ([]Holiday, error) {
	query := `SELECT id, name, date, country FROM holiday WHERE date LIKE ? ORDER BY date`
	return r.queryHolidays(ctx, query, fmt.Sprintf("%04d-%%", year))
}

func (r HolidayRepoImpl) queryHolidays(ctx context.Context, query string, args ...any) ([]Holiday, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query holidays: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var holidays []Holiday
	for rows.Next() {
		var holiday Holiday
		var dateString, country string
		if err := rows.Scan(&holiday.ID, &holiday.Name, &dateString, &country); err != nil {
			err := fmt.Errorf("could not scan holiday: %w", err)
			log.Error(err)
			return nil, err
		}
		date, err := time.Parse(dateLayout, dateString)
		if err != nil {
			err := fmt.Errorf("could not parse holiday date: %w", err)
			log.Error(err)
			return nil, err
		}
		holiday.Date = date
		holiday.Country = Country(country)
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return holidays, nil
}

func (r HolidayRepoImpl) Update(ctx context.Context, holiday Holiday) (bool, error) {
	query := `UPDATE holiday SET name = ?, date = ?, country = ? WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		holiday.Name,
		holiday.Date.Format(dateLayout),
		string(holiday.Country),
		holiday.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r HolidayRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := "DELETE FROM holiday WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}
