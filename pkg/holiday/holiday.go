package holiday

import (
	"time"

	"github.com/resourceflow/resourceflow/pkg/member"
)

// Country scopes a holiday to one country's calendar, or to both.
type Country string

const (
	CountryCanada Country = "canada"
	CountryBrazil Country = "brazil"
	CountryBoth   Country = "both"
)

func (c Country) IsValid() bool {
	return c == CountryCanada || c == CountryBrazil || c == CountryBoth
}

type Holiday struct {
	ID      int
	Name    string
	Date    time.Time
	Country Country
}

// AppliesTo reports whether the holiday is observed by employees of the given
// country. A "both" holiday is observed everywhere.
func (h Holiday) AppliesTo(country member.Country) bool {
	return h.Country == CountryBoth || string(h.Country) == string(country)
}
