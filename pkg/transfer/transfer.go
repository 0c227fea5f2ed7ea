package transfer

import (
	"time"

	"github.com/resourceflow/resourceflow/pkg/allocation"
	"github.com/resourceflow/resourceflow/pkg/holiday"
	"github.com/resourceflow/resourceflow/pkg/member"
	"github.com/resourceflow/resourceflow/pkg/project"
	"github.com/resourceflow/resourceflow/pkg/settings"
	"github.com/resourceflow/resourceflow/pkg/vacation"
)

// Envelope is the JSON document exchanged by export/import and by the backup
// and restore commands. It carries every entity collection plus settings.
type Envelope struct {
	SnapshotId         string                     `json:"snapshotId"`
	ExportedAt         time.Time                  `json:"exportedAt"`
	TeamMembers        []member.MemberDTO         `json:"teamMembers"`
	Projects           []project.ProjectDTO       `json:"projects"`
	Holidays           []holiday.HolidayDTO       `json:"holidays"`
	Vacations          []vacation.VacationDTO     `json:"vacations"`
	ProjectAllocations []allocation.AllocationDTO `json:"projectAllocations"`
	Settings           settings.SettingsDTO       `json:"settings"`
}
