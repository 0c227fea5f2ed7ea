package event_bus

const (
	// ProjectDeletedEvent fires after a project row is removed.
	ProjectDeletedEvent EventType = "project.deleted"
	// TeamMemberDeletedEvent fires after a team member row is removed.
	TeamMemberDeletedEvent EventType = "team_member.deleted"
)

type ProjectDeleted struct {
	ProjectId int
	Name      string
}

type TeamMemberDeleted struct {
	MemberId int
	Name     string
}
