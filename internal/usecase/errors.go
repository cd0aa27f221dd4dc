package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	ErrTeamNotFound         = errors.New("team not found")
	ErrRaceNotFound         = errors.New("race not found")
	ErrLineupLocked         = errors.New("lineup is locked")
	ErrRaceAlreadyScored    = errors.New("race is already scored")
	ErrNoClassificationData = errors.New("no classification data for race")
)
