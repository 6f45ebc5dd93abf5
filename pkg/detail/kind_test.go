package detail

import (
	"testing"

	"tableflip.dev/fitlog/pkg/api"
)

func TestEndpointMap(t *testing.T) {
	want := map[Kind]api.Collection{
		KindWorkout:     "/api/workout-sessions",
		KindNutrition:   "/api/macros",
		KindStress:      "/api/stress",
		KindBodyFeeling: "/api/body-feelings",
		KindSurvey:      "/api/wellness-survey",
		KindActivity:    "/api/physical-activities",
	}
	for k, col := range want {
		got, err := Endpoint(k)
		if err != nil || got != col {
			t.Fatalf("Endpoint(%s) = %s, %v", k, got, err)
		}
	}
	if _, err := Endpoint("sleep"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestEditTargets(t *testing.T) {
	want := map[Kind]string{
		KindWorkout:     "/workouts?tab=sessions&edit=42",
		KindNutrition:   "/nutrition?edit=42",
		KindStress:      "/wellness?tab=stress&edit=42",
		KindBodyFeeling: "/wellness?tab=body&edit=42",
		KindSurvey:      "/wellness?tab=survey&edit=42",
		KindActivity:    "/activity?edit=42",
	}
	for k, route := range want {
		target, err := EditTargetFor(k, "42")
		if err != nil {
			t.Fatalf("EditTargetFor(%s): %v", k, err)
		}
		if target.String() != route {
			t.Fatalf("expected %s, got %s", route, target)
		}
	}
	if _, err := EditTargetFor(KindStress, ""); err == nil {
		t.Fatalf("expected error for empty id")
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"workouts":        KindWorkout,
		"Session":         KindWorkout,
		"macros":          KindNutrition,
		"body":            KindBodyFeeling,
		"wellness-survey": KindSurvey,
		"activity":        KindActivity,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := ParseKind("sleep"); err == nil {
		t.Fatalf("expected error")
	}
}
