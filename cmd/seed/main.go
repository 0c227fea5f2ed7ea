// Command seed fills the configured database with a small sample data set so
// the application can be explored without entering everything by hand.
// Running it twice adds a second copy of the sample rows; use a fresh
// database file for a clean slate.
package main

import (
	"context"

	"github.com/resourceflow/resourceflow/internal/config"
	"github.com/resourceflow/resourceflow/internal/database"
	log "github.com/sirupsen/logrus"
)

type sampleMember struct {
	name    string
	role    string
	country string
}

type sampleProject struct {
	name      string
	startDate string
	endDate   string
	color     string
	status    string
}

type sampleAllocation struct {
	memberIndex  int
	projectIndex int
	startDate    string
	endDate      string
	hoursPerDay  float64
	status       string
}

func main() {
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

	ctx := context.Background()

	members := []sampleMember{
		{"Alice Tremblay", "Backend Developer", "canada"},
		{"Bruno Costa", "Frontend Developer", "brazil"},
		{"Carol Nguyen", "Designer", "canada"},
		{"Diego Santos", "QA Engineer", "brazil"},
	}
	memberIds := make([]int64, 0, len(members))
	for _, m := range members {
		result, err := db.ExecContext(ctx,
			`INSERT INTO team_member (name, role, country, active) VALUES (?, ?, ?, 1)`,
			m.name, m.role, m.country,
		)
		if err != nil {
			log.Fatalf("failed to seed team member %s: %v", m.name, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			log.Fatalf("failed to read team member id: %v", err)
		}
		memberIds = append(memberIds, id)
	}

	projects := []sampleProject{
		{"Website Redesign", "2026-01-05", "2026-06-30", "#4f46e5", "active"},
		{"Mobile App", "2026-02-01", "2026-09-30", "#059669", "active"},
		{"Data Migration", "2026-03-01", "2026-04-30", "#d97706", "on_hold"},
	}
	projectIds := make([]int64, 0, len(projects))
	for _, p := range projects {
		result, err := db.ExecContext(ctx,
			`INSERT INTO project (name, start_date, end_date, color, status) VALUES (?, ?, ?, ?, ?)`,
			p.name, p.startDate, p.endDate, p.color, p.status,
		)
		if err != nil {
			log.Fatalf("failed to seed project %s: %v", p.name, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			log.Fatalf("failed to read project id: %v", err)
		}
		projectIds = append(projectIds, id)
	}

	holidays := [][3]string{
		{"Canada Day", "2026-07-01", "canada"},
		{"Independence Day", "2026-09-07", "brazil"},
		{"New Year's Day", "2026-01-01", "both"},
		{"Christmas Day", "2026-12-25", "both"},
	}
	for _, h := range holidays {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO holiday (name, date, country) VALUES (?, ?, ?)`,
			h[0], h[1], h[2],
		); err != nil {
			log.Fatalf("failed to seed holiday %s: %v", h[0], err)
		}
	}

	allocations := []sampleAllocation{
		{0, 0, "2026-01-05", "2026-03-31", 6, "active"},
		{1, 0, "2026-01-12", "2026-06-30", 7, "active"},
		{1, 1, "2026-02-01", "2026-05-29", 2, "tentative"},
		{2, 1, "2026-02-15", "2026-09-30", 5, "active"},
		{3, 2, "2026-03-01", "2026-04-30", 8, "active"},
	}
	for _, a := range allocations {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO project_allocation (employee_id, project_id, start_date, end_date, hours_per_day, status)
             VALUES (?, ?, ?, ?, ?, ?)`,
			memberIds[a.memberIndex], projectIds[a.projectIndex], a.startDate, a.endDate, a.hoursPerDay, a.status,
		); err != nil {
			log.Fatalf("failed to seed allocation: %v", err)
		}
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO vacation (employee_id, employee_name, start_date, end_date, type)
         VALUES (?, ?, ?, ?, ?)`,
		memberIds[0], members[0].name, "2026-03-16", "2026-03-20", "vacation",
	); err != nil {
		log.Fatalf("failed to seed vacation: %v", err)
	}

	log.Infof("seeded %d team members, %d projects, %d holidays, %d allocations, 1 vacation",
		len(members), len(projects), len(holidays), len(allocations))
}
