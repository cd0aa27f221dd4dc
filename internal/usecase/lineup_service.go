package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/oversteer/fantasy-gp/internal/domain/race"
	"github.com/oversteer/fantasy-gp/internal/domain/team"
)

type SetLineupInput struct {
	TeamID    string
	CaptainID string
	ReserveID string
}

// LineupService manages captain/reserve assignments. Changes are gated by
// the lineup lock of the league's next race; trades are not.
type LineupService struct {
	teamRepo team.Repository
	raceRepo race.Repository
	now      func() time.Time
}

func NewLineupService(teamRepo team.Repository, raceRepo race.Repository) *LineupService {
	return &LineupService{
		teamRepo: teamRepo,
		raceRepo: raceRepo,
		now:      time.Now,
	}
}

// SetLineup assigns the captain and reserve roles. Either id may be empty to
// leave the role for the sanitizer to fill; both must reference owned
// drivers and must differ when both are set.
func (s *LineupService) SetLineup(ctx context.Context, input SetLineupInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.SetLineup")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.CaptainID = strings.TrimSpace(input.CaptainID)
	input.ReserveID = strings.TrimSpace(input.ReserveID)

	if input.TeamID == "" {
		return team.Team{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}
	if input.CaptainID != "" && input.CaptainID == input.ReserveID {
		return team.Team{}, fmt.Errorf("%w: captain and reserve must be different drivers", ErrInvalidInput)
	}

	current, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team for lineup: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrTeamNotFound, input.TeamID)
	}

	if input.CaptainID != "" && !current.Owns(input.CaptainID) {
		return team.Team{}, fmt.Errorf("%w: captain must be an owned driver", ErrInvalidInput)
	}
	if input.ReserveID != "" && !current.Owns(input.ReserveID) {
		return team.Team{}, fmt.Errorf("%w: reserve must be an owned driver", ErrInvalidInput)
	}

	locked, err := s.lineupLocked(ctx, current.LeagueID)
	if err != nil {
		return team.Team{}, err
	}
	if locked {
		return team.Team{}, fmt.Errorf("%w: league=%s", ErrLineupLocked, current.LeagueID)
	}

	next := current
	next.CaptainID = input.CaptainID
	next.ReserveID = input.ReserveID
	next = team.Sanitize(next)
	next.UpdatedAt = s.now().UTC()

	if err := s.teamRepo.Upsert(ctx, next); err != nil {
		return team.Team{}, fmt.Errorf("save team after lineup change: %w", err)
	}

	return next, nil
}

// LockState reports the lineup lock state for one race.
func (s *LineupService) LockState(ctx context.Context, raceID string) (race.LockState, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.LockState")
	defer span.End()

	raceID = strings.TrimSpace(raceID)
	if raceID == "" {
		return "", fmt.Errorf("%w: race_id is required", ErrInvalidInput)
	}

	item, exists, err := s.raceRepo.GetByID(ctx, raceID)
	if err != nil {
		return "", fmt.Errorf("get race for lock state: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: race=%s", ErrRaceNotFound, raceID)
	}

	return race.LineupLockState(item, s.now().UTC()), nil
}

// lineupLocked gates lineup changes on the next uncompleted race of the
// league. A league without an upcoming race, or one whose next race has no
// session configured, keeps the lineup open.
func (s *LineupService) lineupLocked(ctx context.Context, leagueID string) (bool, error) {
	next, exists, err := s.nextRace(ctx, leagueID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	return race.LineupLockState(next, s.now().UTC()) == race.LockLocked, nil
}

func (s *LineupService) nextRace(ctx context.Context, leagueID string) (race.Race, bool, error) {
	items, err := s.raceRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return race.Race{}, false, fmt.Errorf("list races for lineup lock: %w", err)
	}

	upcoming := make([]race.Race, 0, len(items))
	for _, item := range items {
		if item.Completed {
			continue
		}
		upcoming = append(upcoming, item)
	}
	if len(upcoming) == 0 {
		return race.Race{}, false, nil
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Round < upcoming[j].Round
	})
	return upcoming[0], true, nil
}
