package member

// Country determines which weekly-hours constant and holiday set apply to a
// team member.
type Country string

const (
	CountryCanada Country = "canada"
	CountryBrazil Country = "brazil"
)

func (c Country) IsValid() bool {
	return c == CountryCanada || c == CountryBrazil
}

type Member struct {
	ID      int
	Name    string
	Role    string
	Country Country
	// AllocatedHours is a legacy field kept for imports of old data sets.
	// Capacity reports derive hours from allocations instead.
	AllocatedHours *float64
	Active         bool
}
