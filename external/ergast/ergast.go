package ergast

// Wire types for the public F1 results API. Only the fields the sync path
// reads are declared; unknown fields are ignored on decode.

type mrDataEnvelope struct {
	MRData mrData `json:"MRData"`
}

type mrData struct {
	RaceTable raceTable `json:"RaceTable"`
}

type raceTable struct {
	Races []raceNode `json:"Races"`
}

type raceNode struct {
	Season            string       `json:"season"`
	Round             string       `json:"round"`
	Results           []resultNode `json:"Results"`
	QualifyingResults []resultNode `json:"QualifyingResults"`
	SprintResults     []resultNode `json:"SprintResults"`
}

type resultNode struct {
	Position string     `json:"position"`
	Grid     string     `json:"grid"`
	Status   string     `json:"status"`
	Driver   driverNode `json:"Driver"`
}

type driverNode struct {
	DriverID string `json:"driverId"`
	Code     string `json:"code"`
}
