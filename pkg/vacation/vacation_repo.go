package vacation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type VacationRepo interface {
	Store(ctx context.Context, vacation Vacation) (int, error)
	GetAll(ctx context.Context) ([]Vacation, error)
	GetByEmployee(ctx context.Context, employeeId int) ([]Vacation, error)
	Update(ctx context.Context, vacation Vacation) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	DeleteByEmployee(ctx context.Context, employeeId int) (int, error)
}

type VacationRepoImpl struct {
	db *sql.DB
}

func NewVacationRepo(db *sql.DB) *VacationRepoImpl {
	return &VacationRepoImpl{db: db}
}

func (r VacationRepoImpl) Store(ctx context.Context, vacation Vacation) (int, error) {
	query := `INSERT INTO vacation (
                    employee_id,
                    employee_name,
                    start_date,
                    end_date,
                    type
				) VALUES (?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		vacation.EmployeeID,
		vacation.EmployeeName,
		vacation.StartDate.Format(dateLayout),
		vacation.EndDate.Format(dateLayout),
		vacation.Type,
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

func (r VacationRepoImpl) GetAll(ctx context.Context) ([]Vacation, error) {
	query := `SELECT id, employee_id, employee_name, start_date, end_date, type
              FROM vacation ORDER BY start_date`
	return r.queryVacations(ctx, query)
}

func (r VacationRepoImpl) GetByEmployee(ctx context.Context, employeeId int) ([]Vacation, error) {
	query := `SELECT id, employee_id, employee_name, start_date, end_date, type
              FROM vacation WHERE employee_id = ? ORDER BY start_date`
	return r.queryVacations(ctx, query, employeeId)
}

func (r VacationRepoImpl) queryVacations(ctx context.Context, query string, args ...any) ([]Vacation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query vacations: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var vacations []Vacation
	for rows.Next() {
		var vacation Vacation
		var startDateString, endDateString string
		if err := rows.Scan(
			&vacation.ID,
			&vacation.EmployeeID,
			&vacation.EmployeeName,
			&startDateString,
			&endDateString,
			&vacation.Type,
		); err != nil {
			err := fmt.Errorf("could not scan vacation: %w", err)
			log.Error(err)
			return nil, err
		}
		startDate, err := time.Parse(dateLayout, startDateString)
		if err != nil {
			err := fmt.Errorf("could not parse start date: %w", err)
			log.Error(err)
			return nil, err
		}
		endDate, err := time.Parse(dateLayout, endDateString)
		if err != nil {
			err := fmt.Errorf("could not parse end date: %w", err)
			log.Error(err)
			return nil, err
		}
		vacation.StartDate = startDate
		vacation.EndDate = endDate
		vacations = append(vacations, vacation)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return vacations, nil
}

func (r VacationRepoImpl) Update(ctx context.Context, vacation Vacation) (bool, error) {
	query := `UPDATE vacation SET
                  employee_id = ?,
                  employee_name = ?,
                  start_date = ?,
                  end_date = ?,
                  type = ?
              WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		vacation.EmployeeID,
		vacation.EmployeeName,
		vacation.StartDate.Format(dateLayout),
		vacation.EndDate.Format(dateLayout),
		vacation.Type,
		vacation.ID,
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

func (r VacationRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := "DELETE FROM vacation WHERE id = ?"
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

func (r VacationRepoImpl) DeleteByEmployee(ctx context.Context, employeeId int) (int, error) {
	query := "DELETE FROM vacation WHERE employee_id = ?"
	result, err := r.db.ExecContext(ctx, query, employeeId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return 0, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return 0, err
	}
	return int(rowsAffected), nil
}
