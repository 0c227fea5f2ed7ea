package transfer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/resourceflow/resourceflow/pkg/allocation"
	"github.com/resourceflow/resourceflow/pkg/holiday"
	"github.com/resourceflow/resourceflow/pkg/member"
	"github.com/resourceflow/resourceflow/pkg/project"
	"github.com/resourceflow/resourceflow/pkg/settings"
	"github.com/resourceflow/resourceflow/pkg/vacation"
	log "github.com/sirupsen/logrus"
)

type TransferService interface {
	Export(ctx context.Context) (Envelope, error)
	Import(ctx context.Context, envelope Envelope) error
}

// TransferServiceImpl reads collections through the entity repositories and
// writes imports directly within a single transaction, so a failed import
// never leaves a half-replaced database.
type TransferServiceImpl struct {
	db             *sql.DB
	memberRepo     member.MemberRepo
	projectRepo    project.ProjectRepo
	holidayRepo    holiday.HolidayRepo
	vacationRepo   vacation.VacationRepo
	allocationRepo allocation.AllocationRepo
	settingsRepo   settings.SettingsRepo
}

func NewTransferService(
	db *sql.DB,
	memberRepo member.MemberRepo,
	projectRepo project.ProjectRepo,
	holidayRepo holiday.HolidayRepo,
	vacationRepo vacation.VacationRepo,
	allocationRepo allocation.AllocationRepo,
	settingsRepo settings.SettingsRepo,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		db:             db,
		memberRepo:     memberRepo,
		projectRepo:    projectRepo,
		holidayRepo:    holidayRepo,
		vacationRepo:   vacationRepo,
		allocationRepo: allocationRepo,
		settingsRepo:   settingsRepo,
	}
}

func (s *TransferServiceImpl) Export(ctx context.Context) (Envelope, error) {
	members, err := s.memberRepo.GetAll(ctx, false)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to export team members: %w", err)
	}
	projects, err := s.projectRepo.GetAll(ctx)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to export projects: %w", err)
	}
	holidays, err := s.holidayRepo.GetAll(ctx)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to export holidays: %w", err)
	}
	vacations, err := s.vacationRepo.GetAll(ctx)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to export vacations: %w", err)
	}
	allocations, err := s.allocationRepo.GetAll(ctx, allocation.Filter{})
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to export allocations: %w", err)
	}
	currentSettings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to export settings: %w", err)
	}

	envelope := Envelope{
		SnapshotId:         uuid.New().String(),
		ExportedAt:         time.Now().UTC(),
		TeamMembers:        make([]member.MemberDTO, 0, len(members)),
		Projects:           make([]project.ProjectDTO, 0, len(projects)),
		Holidays:           make([]holiday.HolidayDTO, 0, len(holidays)),
		Vacations:          make([]vacation.VacationDTO, 0, len(vacations)),
		ProjectAllocations: make([]allocation.AllocationDTO, 0, len(allocations)),
		Settings:           settings.SettingsToDTO(currentSettings),
	}
	for _, m := range members {
		envelope.TeamMembers = append(envelope.TeamMembers, member.MemberToDTO(m))
	}
	for _, p := range projects {
		envelope.Projects = append(envelope.Projects, project.ProjectToDTO(p))
	}
	for _, h := range holidays {
		envelope.Holidays = append(envelope.Holidays, holiday.HolidayToDTO(h))
	}
	for _, v := range vacations {
		envelope.Vacations = append(envelope.Vacations, vacation.VacationToDTO(v))
	}
	for _, a := range allocations {
		envelope.ProjectAllocations = append(envelope.ProjectAllocations, allocation.AllocationToDTO(a))
	}

	log.Infof("exported snapshot %s: %d members, %d projects, %d holidays, %d vacations, %d allocations",
		envelope.SnapshotId, len(envelope.TeamMembers), len(envelope.Projects),
		len(envelope.Holidays), len(envelope.Vacations), len(envelope.ProjectAllocations))
	return envelope, nil
}

// Import replaces all entity collections with the envelope's contents.
// Original ids are preserved so allocation and vacation references stay valid.
func (s *TransferServiceImpl) Import(ctx context.Context, envelope Envelope) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Errorf("rollback error: %v", rbErr)
		}
	}()

	for _, table := range []string{"project_allocation", "vacation", "holiday", "project", "team_member"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("could not clear table %s: %w", table, err)
		}
	}

	for _, dto := range envelope.TeamMembers {
		m := member.DTOToMember(dto)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO team_member (id, name, role, country, allocated_hours, active) VALUES (?, ?, ?, ?, ?, ?)`,
			m.ID, m.Name, m.Role, string(m.Country), m.AllocatedHours, m.Active,
		); err != nil {
			return fmt.Errorf("could not import team member %d: %w", m.ID, err)
		}
	}
	for _, dto := range envelope.Projects {
		p, err := project.DTOToProject(dto)
		if err != nil {
			return fmt.Errorf("could not parse project %d: %w", dto.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO project (id, name, start_date, end_date, color, status) VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, nullableDate(p.StartDate), nullableDate(p.EndDate), p.Color, string(p.Status),
		); err != nil {
			return fmt.Errorf("could not import project %d: %w", p.ID, err)
		}
	}
	for _, dto := range envelope.Holidays {
		h, err := holiday.DTOToHoliday(dto)
		if err != nil {
			return fmt.Errorf("could not parse holiday %d: %w", dto.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO holiday (id, name, date, country) VALUES (?, ?, ?, ?)`,
			h.ID, h.Name, h.Date.Format("2006-01-02"), string(h.Country),
		); err != nil {
			return fmt.Errorf("could not import holiday %d: %w", h.ID, err)
		}
	}
	for _, dto := range envelope.Vacations {
		v, err := vacation.DTOToVacation(dto)
		if err != nil {
			return fmt.Errorf("could not parse vacation %d: %w", dto.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO vacation (id, employee_id, employee_name, start_date, end_date, type) VALUES (?, ?, ?, ?, ?, ?)`,
			v.ID, v.EmployeeID, v.EmployeeName, v.StartDate.Format("2006-01-02"), v.EndDate.Format("2006-01-02"), v.Type,
		); err != nil {
			return fmt.Errorf("could not import vacation %d: %w", v.ID, err)
		}
	}
	for _, dto := range envelope.ProjectAllocations {
		a, err := allocation.DTOToAllocation(dto)
		if err != nil {
			return fmt.Errorf("could not parse allocation %d: %w", dto.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO project_allocation (id, employee_id, project_id, start_date, end_date, hours_per_day, status)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.EmployeeID, a.ProjectID, a.StartDate.Format("2006-01-02"), a.EndDate.Format("2006-01-02"),
			a.HoursPerDay, string(a.Status),
		); err != nil {
			return fmt.Errorf("could not import allocation %d: %w", a.ID, err)
		}
	}

	importedSettings := settings.DTOToSettings(envelope.Settings)
	if _, err := tx.ExecContext(ctx,
		`UPDATE settings SET buffer_percent = ?, canada_weekly_hours = ?, brazil_weekly_hours = ? WHERE id = 1`,
		importedSettings.BufferPercent, importedSettings.CanadaWeeklyHours, importedSettings.BrazilWeeklyHours,
	); err != nil {
		return fmt.Errorf("could not import settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	log.Infof("imported snapshot %s: %d members, %d projects, %d holidays, %d vacations, %d allocations",
		envelope.SnapshotId, len(envelope.TeamMembers), len(envelope.Projects),
		len(envelope.Holidays), len(envelope.Vacations), len(envelope.ProjectAllocations))
	return nil
}

func nullableDate(date time.Time) interface{} {
	if date.IsZero() {
		return nil
	}
	return date.Format("2006-01-02")
}
