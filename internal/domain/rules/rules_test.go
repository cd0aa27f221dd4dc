package rules

import (
	"reflect"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	if err := Default().Validate(); err != nil {
		t.Fatalf("default rule set must validate: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("zero value fills completely", func(t *testing.T) {
		got := Normalize(RuleSet{LeagueID: "l1"})
		want := Default()
		want.LeagueID = "l1"
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("normalized zero value must equal defaults: got=%+v", got)
		}
	})

	t.Run("overrides survive", func(t *testing.T) {
		got := Normalize(RuleSet{
			PoleBonus:         5,
			CaptainMultiplier: 2,
			RacePoints:        []float64{10, 5},
		})
		if got.PoleBonus != 5 || got.CaptainMultiplier != 2 {
			t.Fatalf("overridden scalars must survive: %+v", got)
		}
		if len(got.RacePoints) != 2 {
			t.Fatalf("overridden points table must survive: %v", got.RacePoints)
		}
		if got.DNFMalus != Default().DNFMalus {
			t.Fatalf("unset fields must fall back to defaults: %+v", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Normalize(RuleSet{Q3Bonus: 4})
		twice := Normalize(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("normalize must be idempotent: once=%+v twice=%+v", once, twice)
		}
	})
}

func TestConstructorMultiplier(t *testing.T) {
	t.Parallel()

	rs := Default()
	rs.ConstructorMultipliers = map[string]float64{"works": 1.3, "bad": -1}

	tests := []struct {
		constructorID string
		want          float64
	}{
		{constructorID: "works", want: 1.3},
		{constructorID: "unknown", want: 1.0},
		{constructorID: "", want: 1.0},
		{constructorID: "bad", want: 1.0},
	}

	for _, tt := range tests {
		if got := rs.ConstructorMultiplier(tt.constructorID); got != tt.want {
			t.Fatalf("ConstructorMultiplier(%q): got=%v want=%v", tt.constructorID, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(rs *RuleSet)
		wantErr bool
	}{
		{name: "default passes", mutate: func(rs *RuleSet) {}},
		{
			name:    "missing race points",
			mutate:  func(rs *RuleSet) { rs.RacePoints = nil },
			wantErr: true,
		},
		{
			name:    "missing sprint points",
			mutate:  func(rs *RuleSet) { rs.SprintPoints = nil },
			wantErr: true,
		},
		{
			name:    "non-positive captain multiplier",
			mutate:  func(rs *RuleSet) { rs.CaptainMultiplier = 0 },
			wantErr: true,
		},
		{
			name:    "non-positive constructor multiplier",
			mutate:  func(rs *RuleSet) { rs.ConstructorMultipliers = map[string]float64{"works": 0} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := Default()
			tt.mutate(&rs)
			err := rs.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected validation result: err=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}
