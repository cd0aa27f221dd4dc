package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/oversteer/fantasy-gp/internal/domain/team"
	"github.com/oversteer/fantasy-gp/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestWriteError_StableReasonCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"team not found", usecase.ErrTeamNotFound, http.StatusNotFound, "team_not_found"},
		{"race not found", usecase.ErrRaceNotFound, http.StatusNotFound, "race_not_found"},
		{"lineup locked", usecase.ErrLineupLocked, http.StatusConflict, "lineup_locked"},
		{"race already scored", usecase.ErrRaceAlreadyScored, http.StatusConflict, "race_already_scored"},
		{"no classification data", usecase.ErrNoClassificationData, http.StatusConflict, "no_classification_data"},
		{"not owned", team.ErrNotOwned, http.StatusConflict, "not_owned"},
		{"already owned", team.ErrAlreadyOwned, http.StatusConflict, "already_owned"},
		{"invalid driver in", team.ErrUnknownDriverIn, http.StatusBadRequest, "invalid_driver_in"},
		{"invalid driver out", team.ErrUnknownDriverOut, http.StatusBadRequest, "invalid_driver_out"},
		{"team full", team.ErrTeamFull, http.StatusConflict, "team_full"},
		{"insufficient budget", team.ErrInsufficientBudget, http.StatusConflict, "insufficient_budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, fmt.Errorf("trade rejected: %w", tt.err))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			var body map[string]any
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			errorObj, ok := body["error"].(map[string]any)
			if !ok {
				t.Fatalf("expected error object in response")
			}
			items, ok := errorObj["errors"].([]any)
			if !ok || len(items) == 0 {
				t.Fatalf("expected error items in response")
			}
			first, _ := items[0].(map[string]any)
			if got, _ := first["reason"].(string); got != tt.wantReason {
				t.Fatalf("expected reason %q, got %v", tt.wantReason, first["reason"])
			}
		})
	}
}

func TestWriteError_UnknownErrorIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
