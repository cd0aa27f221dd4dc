package race

import (
	"fmt"
	"time"

	"github.com/oversteer/fantasy-gp/internal/domain/scoring"
)

// Race is one grand prix weekend on the league calendar. Session
// timestamps are UTC; Results is set once the race has been synced.
type Race struct {
	ID                 string
	LeagueID           string
	Name               string
	Round              int
	Circuit            string
	ScheduledAt        time.Time
	HasSprint          bool
	QualifyingAt       time.Time
	SprintQualifyingAt time.Time
	Completed          bool
	Results            *scoring.ResultsPayload
}

func (r Race) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("race id is required")
	}
	if r.LeagueID == "" {
		return fmt.Errorf("race league id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("race name is required")
	}
	if r.Round <= 0 {
		return fmt.Errorf("race round must be greater than zero")
	}

	return nil
}

// LockSessionStart is the session whose start anchors the lineup lock:
// sprint qualifying on sprint weekends, qualifying otherwise.
func (r Race) LockSessionStart() time.Time {
	if r.HasSprint {
		return r.SprintQualifyingAt
	}
	return r.QualifyingAt
}
