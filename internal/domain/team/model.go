package team

import (
	"fmt"
	"time"
)

// MaxDrivers caps the roster size of a fantasy team.
const MaxDrivers = 5

// Team is one user's fantasy garage in a league. DriverIDs keeps
// acquisition order; the sanitizer relies on it for auto-assignment.
type Team struct {
	ID          string
	UserID      string
	LeagueID    string
	Name        string
	Budget      int64
	DriverIDs   []string
	CaptainID   string
	ReserveID   string
	TotalPoints float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Team) Owns(driverID string) bool {
	for _, id := range t.DriverIDs {
		if id == driverID {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants that must hold after every
// mutation. Sanitize repairs a team; Validate only reports.
func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.UserID == "" {
		return fmt.Errorf("team user id is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if len(t.DriverIDs) > MaxDrivers {
		return fmt.Errorf("team owns more than %d drivers", MaxDrivers)
	}
	if t.Budget < 0 {
		return fmt.Errorf("team budget is negative")
	}

	seen := make(map[string]struct{}, len(t.DriverIDs))
	for _, id := range t.DriverIDs {
		if id == "" {
			return fmt.Errorf("team owns an empty driver id")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("team owns duplicate driver id %s", id)
		}
		seen[id] = struct{}{}
	}

	if t.CaptainID != "" && !t.Owns(t.CaptainID) {
		return fmt.Errorf("captain %s is not an owned driver", t.CaptainID)
	}
	if t.ReserveID != "" && !t.Owns(t.ReserveID) {
		return fmt.Errorf("reserve %s is not an owned driver", t.ReserveID)
	}
	if t.CaptainID != "" && t.CaptainID == t.ReserveID {
		return fmt.Errorf("captain and reserve must be different drivers")
	}
	if t.ReserveID != "" && len(t.DriverIDs) < 2 {
		return fmt.Errorf("reserve requires at least two owned drivers")
	}

	return nil
}
