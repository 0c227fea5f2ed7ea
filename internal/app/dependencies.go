package app

import (
	"database/sql"

	"github.com/resourceflow/resourceflow/internal/config"
	"github.com/resourceflow/resourceflow/internal/event_bus"
	"github.com/resourceflow/resourceflow/internal/utils"
	"github.com/resourceflow/resourceflow/pkg/allocation"
	"github.com/resourceflow/resourceflow/pkg/capacity"
	"github.com/resourceflow/resourceflow/pkg/google"
	"github.com/resourceflow/resourceflow/pkg/holiday"
	"github.com/resourceflow/resourceflow/pkg/member"
	"github.com/resourceflow/resourceflow/pkg/project"
	"github.com/resourceflow/resourceflow/pkg/settings"
	"github.com/resourceflow/resourceflow/pkg/transfer"
	"github.com/resourceflow/resourceflow/pkg/vacation"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	MemberRepo    member.MemberRepo
	MemberService member.MemberService
	MemberHandler *member.MemberHandler

	ProjectRepo    project.ProjectRepo
	ProjectService project.ProjectService
	ProjectHandler *project.ProjectHandler

	HolidayRepo    holiday.HolidayRepo
	HolidayService holiday.HolidayService
	HolidayHandler *holiday.HolidayHandler

	VacationRepo    vacation.VacationRepo
	VacationService vacation.VacationService
	VacationHandler *vacation.VacationHandler

	AllocationRepo    allocation.AllocationRepo
	AllocationService allocation.AllocationService
	AllocationHandler *allocation.AllocationHandler

	SettingsRepo    settings.SettingsRepo
	SettingsService settings.SettingsService
	SettingsHandler *settings.SettingsHandler

	CapacityService capacity.CapacityService
	CapacityHandler *capacity.CapacityHandler

	TransferService transfer.TransferService
	TransferHandler *transfer.TransferHandler

	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service
	GoogleHandler *google.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, bus *event_bus.EventBus, cfg config.Application) *Dependencies {
	deps := &Dependencies{EventBus: bus}

	deps.MemberRepo = member.NewMemberRepo(db)
	deps.MemberService = member.NewMemberService(deps.MemberRepo, bus)
	deps.MemberHandler = member.NewMemberHandler(deps.MemberService)

	deps.ProjectRepo = project.NewProjectRepo(db)
	deps.ProjectService = project.NewProjectService(deps.ProjectRepo, bus)
	deps.ProjectHandler = project.NewProjectHandler(deps.ProjectService)

	deps.HolidayRepo = holiday.NewHolidayRepo(db)
	deps.HolidayService = holiday.NewHolidayService(deps.HolidayRepo)
	deps.HolidayHandler = holiday.NewHolidayHandler(deps.HolidayService)

	deps.VacationRepo = vacation.NewVacationRepo(db)
	deps.VacationService = vacation.NewVacationService(deps.VacationRepo, deps.MemberRepo)
	deps.VacationHandler = vacation.NewVacationHandler(deps.VacationService)

	deps.AllocationRepo = allocation.NewAllocationRepo(db)
	deps.AllocationService = allocation.NewAllocationService(deps.AllocationRepo)
	deps.AllocationHandler = allocation.NewAllocationHandler(deps.AllocationService)

	deps.SettingsRepo = settings.NewSettingsRepo(db)
	deps.SettingsService = settings.NewSettingsService(deps.SettingsRepo)
	deps.SettingsHandler = settings.NewSettingsHandler(deps.SettingsService)

	deps.Clock = &utils.SystemClock{}
	deps.CapacityService = capacity.NewCapacityService(
		deps.SettingsRepo,
		deps.MemberRepo,
		deps.HolidayRepo,
		deps.VacationRepo,
		deps.AllocationRepo,
		cfg.Scheduling.WeeksPerMonth,
		deps.Clock,
	)
	deps.CapacityHandler = capacity.NewCapacityHandler(deps.CapacityService)

	deps.TransferService = transfer.NewTransferService(
		db,
		deps.MemberRepo,
		deps.ProjectRepo,
		deps.HolidayRepo,
		deps.VacationRepo,
		deps.AllocationRepo,
		deps.SettingsRepo,
	)
	deps.TransferHandler = transfer.NewTransferHandler(deps.TransferService)

	deps.GoogleAuth = google.NewGoogleAuth(db, cfg)
	deps.GoogleService = google.NewService(deps.GoogleAuth, deps.HolidayRepo)
	deps.GoogleHandler = google.NewHandler(deps.GoogleService)

	registerEventSubscriptions(deps, bus)

	return deps
}

// registerEventSubscriptions wires cross-package cleanup. Deleting a project
// removes its allocations; deleting a team member removes their allocations
// and vacations.
func registerEventSubscriptions(deps *Dependencies, bus *event_bus.EventBus) {
	event_bus.SubscribeTyped(bus, event_bus.ProjectDeletedEvent,
		func(e event_bus.EventT[event_bus.ProjectDeleted]) error {
			log.Debugf("cleaning up after deleted project %q (%d)", e.Data.Name, e.Data.ProjectId)
			_, err := deps.AllocationService.DeleteByProject(e.Context(), e.Data.ProjectId)
			return err
		})

	event_bus.SubscribeTyped(bus, event_bus.TeamMemberDeletedEvent,
		func(e event_bus.EventT[event_bus.TeamMemberDeleted]) error {
			log.Debugf("cleaning up after deleted team member %q (%d)", e.Data.Name, e.Data.MemberId)
			if _, err := deps.AllocationService.DeleteByEmployee(e.Context(), e.Data.MemberId); err != nil {
				return err
			}
			_, err := deps.VacationService.DeleteByEmployee(e.Context(), e.Data.MemberId)
			return err
		})
}
