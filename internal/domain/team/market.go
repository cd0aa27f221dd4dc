package team

import (
	"errors"

	"github.com/oversteer/fantasy-gp/internal/domain/driver"
)

var (
	ErrNotOwned           = errors.New("driver is not owned by the team")
	ErrAlreadyOwned       = errors.New("driver is already owned by the team")
	ErrUnknownDriverIn    = errors.New("unknown driver to buy")
	ErrUnknownDriverOut   = errors.New("unknown driver to sell")
	ErrTeamFull           = errors.New("team roster is full")
	ErrInsufficientBudget = errors.New("insufficient budget")
)

// ApplyTrade validates and applies a buy/sell/swap against a team. Checks
// run in a fixed order and the first failure wins; on success the budget
// and roster change together and the result is sanitized. Prices are read
// from drivers at call time, never cached. Either id may be empty;
// buyID == sellID is an allowed no-op swap.
func ApplyTrade(t Team, drivers map[string]driver.Driver, buyID, sellID string) (Team, error) {
	if sellID != "" && !t.Owns(sellID) {
		return Team{}, ErrNotOwned
	}
	if buyID != "" && t.Owns(buyID) && buyID != sellID {
		return Team{}, ErrAlreadyOwned
	}

	var sellPrice, buyPrice int64
	if sellID != "" {
		sold, ok := drivers[sellID]
		if !ok {
			return Team{}, ErrUnknownDriverOut
		}
		sellPrice = sold.Price
	}
	if buyID != "" {
		bought, ok := drivers[buyID]
		if !ok {
			return Team{}, ErrUnknownDriverIn
		}
		buyPrice = bought.Price
	}

	size := len(t.DriverIDs)
	if sellID != "" {
		size--
	}
	if buyID != "" {
		size++
	}
	if size > MaxDrivers {
		return Team{}, ErrTeamFull
	}

	budget := t.Budget + sellPrice - buyPrice
	if budget < 0 {
		return Team{}, ErrInsufficientBudget
	}

	if buyID != "" && buyID == sellID {
		return Sanitize(t), nil
	}

	next := t
	next.Budget = budget
	next.DriverIDs = make([]string, 0, size)
	for _, id := range t.DriverIDs {
		if id == sellID {
			continue
		}
		next.DriverIDs = append(next.DriverIDs, id)
	}
	if buyID != "" {
		next.DriverIDs = append(next.DriverIDs, buyID)
	}

	return Sanitize(next), nil
}
