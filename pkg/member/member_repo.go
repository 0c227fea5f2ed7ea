package member

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type MemberRepo interface {
	Store(ctx context.Context, member Member) (int, error)
	GetAll(ctx context.Context, onlyActive bool) ([]Member, error)
	GetById(ctx context.Context, id int) (*Member, error)
	Update(ctx context.Context, member Member) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type MemberRepoImpl struct {
	db *sql.DB
}

func NewMemberRepo(db *sql.DB) *MemberRepoImpl {
	return &MemberRepoImpl{db: db}
}

func (r MemberRepoImpl) Store(ctx context.Context, member Member) (int, error) {
	query := `INSERT INTO team_member (
                    name,
                    role,
                    country,
                    allocated_hours,
                    active
				) VALUES (?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		member.Name,
		member.Role,
		string(member.Country),
		member.AllocatedHours,
		member.Active,
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

func (r MemberRepoImpl) GetAll(ctx context.Context, onlyActive bool) ([]Member, error) {
	query := `SELECT id, name, role, country, allocated_hours, active FROM team_member`
	if onlyActive {
		query += " WHERE active = 1"
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query team members: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		member, err := scanMember(rows.Scan)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return members, nil
}

func (r MemberRepoImpl) GetById(ctx context.Context, id int) (*Member, error) {
	query := `SELECT id, name, role, country, allocated_hours, active FROM team_member WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	member, err := scanMember(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		err := fmt.Errorf("could not scan team member: %w", err)
		log.Error(err)
		return nil, err
	}
	return &member, nil
}

func (r MemberRepoImpl) Update(ctx context.Context, member Member) (bool, error) {
	query := `UPDATE team_member SET
                  name = ?,
                  role = ?,
                  country = ?,
                  allocated_hours = ?,
                  active = ?
              WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		member.Name,
		member.Role,
		string(member.Country),
		member.AllocatedHours,
		member.Active,
		member.ID,
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

func (r MemberRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := "DELETE FROM team_member WHERE id = ?"
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

func scanMember(scan func(dest ...any) error) (Member, error) {
	var member Member
	var country string
	var allocatedHours sql.NullFloat64
	if err := scan(
		&member.ID,
		&member.Name,
		&member.Role,
		&country,
		&allocatedHours,
		&member.Active,
	); err != nil {
		return Member{}, err
	}
	member.Country = Country(country)
	if allocatedHours.Valid {
		member.AllocatedHours = &allocatedHours.Float64
	}
	return member, nil
}
