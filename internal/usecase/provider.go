package usecase

import "context"

// RaceClassification is the session data a results provider returns for one
// grand prix weekend. Every map is driver id -> finishing/grid position; a
// driver missing from a session map did not classify in that session.
type RaceClassification struct {
	Grid       map[string]int
	Race       map[string]int
	SprintGrid map[string]int
	Sprint     map[string]int
}

// HasRaceData reports whether the provider returned a usable race session.
func (c RaceClassification) HasRaceData() bool {
	return len(c.Race) > 0
}

// ClassificationProvider fetches official session results from an upstream
// data source.
type ClassificationProvider interface {
	FetchRaceClassification(ctx context.Context, season int, round int) (RaceClassification, error)
}
