package project

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type ProjectRepo interface {
	Store(ctx context.Context, project Project) (int, error)
	GetAll(ctx context.Context) ([]Project, error)
	GetById(ctx context.Context, id int) (*Project, error)
	Update(ctx context.Context, project Project) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ProjectRepoImpl struct {
	db *sql.DB
}

func NewProjectRepo(db *sql.DB) *ProjectRepoImpl {
	return &ProjectRepoImpl{db: db}
}

func (r ProjectRepoImpl) Store(ctx context.Context, project Project) (int, error) {
	query := `INSERT INTO project (
                    name,
                    start_date,
                    end_date,
                    color,
                    status
				) VALUES (?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		project.Name,
		dateParam(project.StartDate),
		dateParam(project.EndDate),
		project.Color,
		string(project.Status),
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

func (r ProjectRepoImpl) GetAll(ctx context.Context) ([]Project, error) {
	query := `SELECT id, name, start_date, end_date, color, status FROM project ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query projects: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		project, err := scanProject(rows.Scan)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return projects, nil
}

func (r ProjectRepoImpl) GetById(ctx context.Context, id int) (*Project, error) {
	query := `SELECT id, name, start_date, end_date, color, status FROM project WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	project, err := scanProject(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		err := fmt.Errorf("could not scan project: %w", err)
		log.Error(err)
		return nil, err
	}
	return &project, nil
}

func (r ProjectRepoImpl) Update(ctx context.Context, project Project) (bool, error) {
	query := `UPDATE project SET
                  name = ?,
                  start_date = ?,
                  end_date = ?,
                  color = ?,
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
		project.Name,
		dateParam(project.StartDate),
		dateParam(project.EndDate),
		project.Color,
		string(project.Status),
		project.ID,
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

func (r ProjectRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := "DELETE FROM project WHERE id = ?"
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

func dateParam(date time.Time) interface{} {
	if date.IsZero() {
		return nil
	}
	return date.Format(dateLayout)
}

func scanProject(scan func(dest ...any) error) (Project, error) {
	var project Project
	var startDate, endDate sql.NullString
	var status string
	if err := scan(
		&project.ID,
		&project.Name,
		&startDate,
		&endDate,
		&project.Color,
		&status,
	); err != nil {
		return Project{}, err
	}
	project.Status = ProjectStatus(status)
	if startDate.Valid {
		parsed, err := time.Parse(dateLayout, startDate.String)
		if err != nil {
			return Project{}, fmt.Errorf("could not parse start date: %w", err)
		}
		project.StartDate = parsed
	}
	if endDate.Valid {
		parsed, err := time.Parse(dateLayout, endDate.String)
		if err != nil {
			return Project{}, fmt.Errorf("could not parse end date: %w", err)
		}
		project.EndDate = parsed
	}
	return project, nil
}
