package memory

import (
	"time"

	"github.com/oversteer/fantasy-gp/internal/domain/driver"
	"github.com/oversteer/fantasy-gp/internal/domain/league"
	"github.com/oversteer/fantasy-gp/internal/domain/race"
	"github.com/oversteer/fantasy-gp/internal/domain/rules"
)

const LeagueIDGrandPrix2025 = "gp-world-2025"

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:        LeagueIDGrandPrix2025,
			Name:      "Grand Prix World Championship",
			Season:    2025,
			IsDefault: true,
		},
	}
}

func SeedConstructors() []driver.Constructor {
	return []driver.Constructor{
		{ID: "cn-redwing", LeagueID: LeagueIDGrandPrix2025, Name: "Redwing Racing", Color: "#1E41FF"},
		{ID: "cn-argento", LeagueID: LeagueIDGrandPrix2025, Name: "Scuderia Argento", Color: "#DC0000"},
		{ID: "cn-meridian", LeagueID: LeagueIDGrandPrix2025, Name: "Meridian GP", Color: "#00D2BE"},
		{ID: "cn-harrier", LeagueID: LeagueIDGrandPrix2025, Name: "Harrier F1 Team", Color: "#FF8700"},
		{ID: "cn-borealis", LeagueID: LeagueIDGrandPrix2025, Name: "Borealis Autosport", Color: "#2293D1"},
	}
}

func SeedDrivers() []driver.Driver {
	return []driver.Driver{
		{ID: "drv-mvolt", LeagueID: LeagueIDGrandPrix2025, ConstructorID: "cn-redwing", Name: "Max Voltaren", Number: 1, Price: 310},
		{ID: "drv-slane", LeagueID: LeagueIDGrandPrix2025, ConstructorID: "cn-redwing", Name: "Sergio Lane", Number: 11, Price: 240},
		{ID: "drv-cmarch", LeagueID: LeagueIDGrandPrix2025, ConstructorID: "cn-argento", Name: "Carlo Marchetti", Number: 55, Price: 255},
		{ID: "drv-lbianc", LeagueID: LeagueIDGrandPrix2025, ConstructorID: "cn-argento", Name: "Luca Bianchi", Number: 16, Price: 265},
		{ID: "drv-hliddel", LeagueID: LeagueIDGrandPrix2025, ConstructorID: "cn-meridian", Name: "Hugh Liddell", Number: 44, Price: 270},
		{ID: "drv-grusso", LeagueID: LeagueIDGrandPrix2025, ConstructorID: "cn-meridian", Name: "George Russo", Number: 63, Price: 235},
		{ID: "drv-lnorth", LeagueID: LeagueIDGrandPrix2025, ConstructorID: "cn-harrier", Name: "Lando North", Number: 4, Price: 250},
		{ID: "drv-opiast", LeagueID: LeagueIDGrandPrix2025, ConstructorID: "cn-harrier", Name: "Oscar Piastrelli", Number: 81, Price: 230},
		{ID: "drv-falons", LeagueID: LeagueIDGrandPrix2025, ConstructorID: "cn-borealis", Name: "Fernando Alonsi", Number: 14, Price: 195},
		{ID: "drv-lstrol", LeagueID: LeagueIDGrandPrix2025, ConstructorID: "cn-borealis", Name: "Lance Strollman", Number: 18, Price: 150},
	}
}

func SeedRaces() []race.Race {
	return []race.Race{
		{
			ID:           "race-2025-01",
			LeagueID:     LeagueIDGrandPrix2025,
			Name:         "Sakhir Grand Prix",
			Round:        1,
			Circuit:      "Bahrain International Circuit",
			ScheduledAt:  time.Date(2025, 3, 2, 15, 0, 0, 0, time.UTC),
			QualifyingAt: time.Date(2025, 3, 1, 16, 0, 0, 0, time.UTC),
		},
		{
			ID:                 "race-2025-02",
			LeagueID:           LeagueIDGrandPrix2025,
			Name:               "Shanghai Grand Prix",
			Round:              2,
			Circuit:            "Shanghai International Circuit",
			ScheduledAt:        time.Date(2025, 3, 23, 7, 0, 0, 0, time.UTC),
			HasSprint:          true,
			QualifyingAt:       time.Date(2025, 3, 22, 7, 0, 0, 0, time.UTC),
			SprintQualifyingAt: time.Date(2025, 3, 21, 7, 30, 0, 0, time.UTC),
		},
		{
			ID:           "race-2025-03",
			LeagueID:     LeagueIDGrandPrix2025,
			Name:         "Suzuka Grand Prix",
			Round:        3,
			Circuit:      "Suzuka Circuit",
			ScheduledAt:  time.Date(2025, 4, 6, 5, 0, 0, 0, time.UTC),
			QualifyingAt: time.Date(2025, 4, 5, 6, 0, 0, 0, time.UTC),
		},
		{
			ID:          "race-2025-04",
			LeagueID:    LeagueIDGrandPrix2025,
			Name:        "Miami Grand Prix",
			Round:       4,
			Circuit:     "Miami International Autodrome",
			ScheduledAt: time.Date(2025, 5, 4, 20, 0, 0, 0, time.UTC),
			// Session times announced later; the lineup lock stays
			// unconfigured until they land.
		},
	}
}

func SeedRules() []rules.RuleSet {
	stock := rules.Default()
	stock.LeagueID = LeagueIDGrandPrix2025
	return []rules.RuleSet{stock}
}
