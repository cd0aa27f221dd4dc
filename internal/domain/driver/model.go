package driver

import "fmt"

// Driver is a buyable real-world driver in a fantasy league pool.
// Identity is immutable; Price and SeasonPoints move over the season.
type Driver struct {
	ID            string
	LeagueID      string
	ConstructorID string
	Name          string
	Number        int
	Price         int64
	SeasonPoints  float64
	ImageURL      string
}

func (d Driver) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("driver id is required")
	}
	if d.LeagueID == "" {
		return fmt.Errorf("driver league id is required")
	}
	if d.ConstructorID == "" {
		return fmt.Errorf("driver constructor id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("driver name is required")
	}
	if d.Price <= 0 {
		return fmt.Errorf("driver price must be greater than zero")
	}

	return nil
}

// Constructor is the real-world team a driver races for.
type Constructor struct {
	ID       string
	LeagueID string
	Name     string
	Color    string
}

func (c Constructor) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("constructor id is required")
	}
	if c.LeagueID == "" {
		return fmt.Errorf("constructor league id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("constructor name is required")
	}

	return nil
}

// Teammates derives the teammate pairing from the driver pool. A pairing
// exists only when a constructor fields exactly two drivers; any other
// count (mid-season swaps, reserve substitutions) leaves those drivers
// without a teammate rather than guessing.
func Teammates(drivers []Driver) map[string]string {
	byConstructor := make(map[string][]string)
	for _, d := range drivers {
		if d.ConstructorID == "" {
			continue
		}
		byConstructor[d.ConstructorID] = append(byConstructor[d.ConstructorID], d.ID)
	}

	out := make(map[string]string)
	for _, ids := range byConstructor {
		if len(ids) != 2 {
			continue
		}
		out[ids[0]] = ids[1]
		out[ids[1]] = ids[0]
	}

	return out
}

// ConstructorByDriver maps each driver id to its constructor id.
func ConstructorByDriver(drivers []Driver) map[string]string {
	out := make(map[string]string, len(drivers))
	for _, d := range drivers {
		out[d.ID] = d.ConstructorID
	}
	return out
}
