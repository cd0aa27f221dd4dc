package ergast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchRaceClassification_MapsSessions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/2025/4/results.json":
			_, _ = w.Write([]byte(`{"MRData":{"RaceTable":{"Races":[{"season":"2025","round":"4","Results":[
				{"position":"1","grid":"2","status":"Finished","Driver":{"driverId":"verstappen"}},
				{"position":"2","grid":"1","status":"+1 Lap","Driver":{"driverId":"norris"}},
				{"position":"3","grid":"4","status":"Accident","Driver":{"driverId":"leclerc"}}
			]}]}}}`))
		case "/2025/4/qualifying.json":
			_, _ = w.Write([]byte(`{"MRData":{"RaceTable":{"Races":[{"QualifyingResults":[
				{"position":"1","Driver":{"driverId":"norris"}},
				{"position":"2","Driver":{"driverId":"verstappen"}},
				{"position":"11","Driver":{"driverId":"leclerc"}}
			]}]}}}`))
		case "/2025/4/sprint.json":
			_, _ = w.Write([]byte(`{"MRData":{"RaceTable":{"Races":[{"SprintResults":[
				{"position":"1","grid":"1","status":"Finished","Driver":{"driverId":"norris"}},
				{"position":"2","grid":"3","status":"Finished","Driver":{"driverId":"verstappen"}}
			]}]}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	got, err := client.FetchRaceClassification(context.Background(), 2025, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.HasRaceData() {
		t.Fatalf("expected race data")
	}
	if got.Race["verstappen"] != 1 || got.Race["norris"] != 2 {
		t.Fatalf("unexpected race map: %v", got.Race)
	}
	if _, ok := got.Race["leclerc"]; ok {
		t.Fatalf("retired driver must not be classified: %v", got.Race)
	}
	if got.Grid["norris"] != 1 || got.Grid["leclerc"] != 11 {
		t.Fatalf("expected qualifying positions to win over race grid slots: %v", got.Grid)
	}
	if got.Sprint["norris"] != 1 || got.SprintGrid["verstappen"] != 3 {
		t.Fatalf("unexpected sprint maps: race=%v grid=%v", got.Sprint, got.SprintGrid)
	}
}

func TestFetchRaceClassification_SprintAbsent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/2025/5/results.json":
			_, _ = w.Write([]byte(`{"MRData":{"RaceTable":{"Races":[{"Results":[
				{"position":"1","grid":"1","status":"Finished","Driver":{"driverId":"verstappen"}}
			]}]}}}`))
		default:
			// Empty race table is how the provider answers for sessions
			// that do not exist on a conventional weekend.
			_, _ = w.Write([]byte(`{"MRData":{"RaceTable":{"Races":[]}}}`))
		}
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	got, err := client.FetchRaceClassification(context.Background(), 2025, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Sprint) != 0 || len(got.SprintGrid) != 0 {
		t.Fatalf("expected no sprint data, got race=%v grid=%v", got.Sprint, got.SprintGrid)
	}
	if got.Grid["verstappen"] != 1 {
		t.Fatalf("expected race grid fallback when qualifying is empty: %v", got.Grid)
	}
}

func TestFetchRaceClassification_RaceFetchFailureIsFatal(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	if _, err := client.FetchRaceClassification(context.Background(), 2025, 6); err == nil {
		t.Fatalf("expected error when race results cannot be fetched")
	}
}

func TestPickFinish_Statuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status string
		want   bool
	}{
		{"Finished", true},
		{"+1 Lap", true},
		{"+2 Laps", true},
		{"Accident", false},
		{"Engine", false},
		{"Retired", false},
	}
	for _, tt := range tests {
		_, got := pickFinish(resultNode{Position: "5", Status: tt.status})
		if got != tt.want {
			t.Fatalf("status %q: classified=%v want=%v", tt.status, got, tt.want)
		}
	}
}
