package league

import "fmt"

// League is one fantasy grand prix competition, scoped to a real-world season.
type League struct {
	ID        string
	Name      string
	Season    int
	IsDefault bool
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Season == 0 {
		return fmt.Errorf("league season is required")
	}

	return nil
}
