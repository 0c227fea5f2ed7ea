package allocation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// Filter narrows GetAll results. Zero values mean "no restriction".
type Filter struct {
	EmployeeID int
	ProjectID  int
	From       time.Time
	To         time.Time
}

type AllocationRepo interface {
	Store(ctx context.Context, allocation Allocation) (int, error)
	GetAll(ctx context.Context, filter Filter) ([]Allocation, error)
	GetById(ctx context.Context, id int) (*Allocation, error)
	Update(ctx context.Context, allocation Allocation) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	DeleteByProject(ctx context.Context, projectId int) (int, error)
	DeleteByEmployee(ctx context.Context, employeeId int) (int, error)
}

type AllocationRepoImpl struct {
	db *sql.DB
}

func NewAllocationRepo(db *sql.DB) *AllocationRepoImpl {
	return &AllocationRepoImpl{db: db}
}

func (r AllocationRepoImpl) Store(ctx context.Context, allocation Allocation) (int, error) {
	query := `INSERT INTO project_allocation (
                    employee_id,
                    project_id,
                    start_date,
                    end_date,
                    hours_per_day,
                    status
				) VALUES (?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		allocation.EmployeeID,
		allocation.ProjectID,
		allocation.StartDate.Format(dateLayout),
		allocation.EndDate.Format(dateLayout),
		allocation.HoursPerDay,
		string(allocation.Status),
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

func (r AllocationRepoImpl) GetAll(ctx context.Context, filter Filter) ([]Allocation, error) {
	query := `SELECT id, employee_id, project_id, start_date, end_date, hours_per_day, status
              FROM project_allocation WHERE 1 = 1`
	args := make([]any, 0, 4)
	if filter.EmployeeID > 0 {
		query += " AND employee_id = ?"
		args = append(args, filter.EmployeeID)
	}
	if filter.ProjectID > 0 {
		query += " AND project_id = ?"
		args = append(args, filter.ProjectID)
	}
	// Range filter keeps every allocation overlapping [from, to].
	if !filter.From.IsZero() {
		query += " AND end_date >= ?"
		args = append(args, filter.From.Format(dateLayout))
	}
	if !filter.To.IsZero() {
		query += " AND start_date <= ?"
		args = append(args, filter.To.Format(dateLayout))
	}
	query += " ORDER BY start_date"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query allocations: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var allocations []Allocation
	for rows.Next() {
		allocation, err := scanAllocation(rows.Scan)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		allocations = append(allocations, allocation)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return allocations, nil
}

func (r AllocationRepoImpl) GetById(ctx context.Context, id int) (*Allocation, error) {
	query := `SELECT id, employee_id, project_id, start_date, end_date, hours_per_day, status
              FROM project_allocation WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	allocation, err := scanAllocation(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		err := fmt.Errorf("could not scan allocation: %w", err)
		log.Error(err)
		return nil, err
	}
	return &allocation, nil
}

func (r AllocationRepoImpl) Update(ctx context.Context, allocation Allocation) (bool, error) {
	query := `UPDATE project_allocation SET
                  employee_id = ?,
                  project_id = ?,
                  start_date = ?,
                  end_date = ?,
                  hours_per_day = ?,
                  status = ?
              WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		allocation.EmployeeID,
		allocation.ProjectID,
		allocation.StartDate.Format(dateLayout),
		allocation.EndDate.Format(dateLayout),
		allocation.HoursPerDay,
		string(allocation.Status),
		allocation.ID,
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

func (r AllocationRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := "DELETE FROM project_allocation WHERE id = ?"
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

func (r AllocationRepoImpl) DeleteByProject(ctx context.Context, projectId int) (int, error) {
	return r.deleteBy(ctx, "DELETE FROM project_allocation WHERE project_id = ?", projectId)
}

func (r AllocationRepoImpl) DeleteByEmployee(ctx context.Context, employeeId int) (int, error) {
	return r.deleteBy(ctx, "DELETE FROM project_allocation WHERE employee_id = ?", employeeId)
}

func (r AllocationRepoImpl) deleteBy(ctx context.Context, query string, arg any) (int, error) {
	result, err := r.db.ExecContext(ctx, query, arg)
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

func scanAllocation(scan func(dest ...any) error) (Allocation, error) {
	var allocation Allocation
	var startDateString, endDateString, status string
	if err := scan(
		&allocation.ID,
		&allocation.EmployeeID,
		&allocation.ProjectID,
		&startDateString,
		&endDateString,
		&allocation.HoursPerDay,
		&status,
	); err != nil {
		return Allocation{}, err
	}
	startDate, err := time.Parse(dateLayout, startDateString)
	if err != nil {
		return Allocation{}, fmt.Errorf("could not parse start date: %w", err)
	}
	endDate, err := time.Parse(dateLayout, endDateString)
	if err != nil {
		return Allocation{}, fmt.Errorf("could not parse end date: %w", err)
	}
	allocation.StartDate = startDate
	allocation.EndDate = endDate
	allocation.Status = AllocationStatus(status)
	return allocation, nil
}
