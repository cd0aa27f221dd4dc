package team

// Sanitize repairs a team's captain/reserve assignment after a structural
// change to the owned drivers. It is total and idempotent:
// Sanitize(Sanitize(t)) == Sanitize(t) for every t.
//
// The rules run in order because each can invalidate the outcome of an
// earlier one:
//  1. clear a captain that is no longer owned
//  2. clear a reserve that is no longer owned
//  3. auto-assign the captain to the first acquired driver
//  4. drop the reserve when fewer than two drivers are owned
//  5. on a full roster, auto-assign the reserve to the most recently
//     acquired non-captain driver
//  6. captain and reserve must differ; the reserve yields, then rule 5
//     re-runs on a full roster
func Sanitize(t Team) Team {
	if t.CaptainID != "" && !t.Owns(t.CaptainID) {
		t.CaptainID = ""
	}
	if t.ReserveID != "" && !t.Owns(t.ReserveID) {
		t.ReserveID = ""
	}

	if t.CaptainID == "" && len(t.DriverIDs) > 0 {
		t.CaptainID = t.DriverIDs[0]
	}

	if len(t.DriverIDs) < 2 {
		t.ReserveID = ""
	}

	if len(t.DriverIDs) == MaxDrivers && t.ReserveID == "" {
		t.ReserveID = latestNonCaptain(t)
	}

	if t.CaptainID != "" && t.CaptainID == t.ReserveID {
		t.ReserveID = ""
		if len(t.DriverIDs) == MaxDrivers {
			t.ReserveID = latestNonCaptain(t)
		}
	}

	return t
}

func latestNonCaptain(t Team) string {
	for i := len(t.DriverIDs) - 1; i >= 0; i-- {
		if t.DriverIDs[i] != t.CaptainID {
			return t.DriverIDs[i]
		}
	}
	return ""
}
