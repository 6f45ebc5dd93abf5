// Package detail builds the per-day drill-down: one section per logged
// category, edit targets for the owning editors, and delete followed by
// re-aggregation.
package detail

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"tableflip.dev/fitlog/pkg/api"
	"tableflip.dev/fitlog/pkg/record"
)

// Kind identifies the collection a detail item belongs to.
type Kind string

const (
	KindWorkout     Kind = "workouts"
	KindNutrition   Kind = "nutrition"
	KindStress      Kind = "stress"
	KindBodyFeeling Kind = "body-feelings"
	KindSurvey      Kind = "wellness-survey"
	KindActivity    Kind = "physical-activities"
)

var endpoints = map[Kind]api.Collection{
	KindWorkout:     api.WorkoutSessions,
	KindNutrition:   api.Macros,
	KindStress:      api.Stress,
	KindBodyFeeling: api.BodyFeelings,
	KindSurvey:      api.WellnessSurveys,
	KindActivity:    api.PhysicalActivities,
}

var aliases = map[string]Kind{
	"workout":          KindWorkout,
	"session":          KindWorkout,
	"workout-sessions": KindWorkout,
	"macros":           KindNutrition,
	"macro":            KindNutrition,
	"body":             KindBodyFeeling,
	"body-feeling":     KindBodyFeeling,
	"survey":           KindSurvey,
	"activity":         KindActivity,
}

// Kinds lists every kind in display order.
func Kinds() []Kind {
	return []Kind{KindWorkout, KindNutrition, KindStress, KindBodyFeeling, KindSurvey, KindActivity}
}

// ParseKind accepts a kind or one of its short aliases.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := endpoints[Kind(s)]; ok {
		return Kind(s), nil
	}
	if k, ok := aliases[s]; ok {
		return k, nil
	}
	names := make([]string, 0, len(endpoints))
	for k := range endpoints {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return "", fmt.Errorf("detail: unknown kind %q (want one of %s)", s, strings.Join(names, ", "))
}

// Endpoint returns the collection that deletes records of kind k.
func Endpoint(k Kind) (api.Collection, error) {
	col, ok := endpoints[k]
	if !ok {
		return "", fmt.Errorf("detail: no endpoint for kind %q", k)
	}
	return col, nil
}

// KindOfWellness maps a wellness record to its item kind.
func KindOfWellness(w record.Wellness) Kind {
	switch w.Kind {
	case record.KindStress:
		return KindStress
	case record.KindBodyFeeling:
		return KindBodyFeeling
	}
	return KindSurvey
}

// EditTarget is where an external editor edits one record.
type EditTarget struct {
	Kind  Kind   `json:"kind"`
	ID    string `json:"id"`
	Route string `json:"route"`
	Tab   string `json:"tab,omitempty"`
}

// String renders the target as route?tab=..&edit=id.
func (t EditTarget) String() string {
	s := t.Route + "?"
	if t.Tab != "" {
		s += "tab=" + url.QueryEscape(t.Tab) + "&"
	}
	return s + "edit=" + url.QueryEscape(t.ID)
}

// EditTargetFor returns the editor route for a record.
func EditTargetFor(k Kind, id string) (EditTarget, error) {
	if id == "" {
		return EditTarget{}, fmt.Errorf("detail: edit %s: empty id", k)
	}
	t := EditTarget{Kind: k, ID: id}
	switch k {
	case KindWorkout:
		t.Route, t.Tab = "/workouts", "sessions"
	case KindNutrition:
		t.Route = "/nutrition"
	case KindStress:
		t.Route, t.Tab = "/wellness", "stress"
	case KindBodyFeeling:
		t.Route, t.Tab = "/wellness", "body"
	case KindSurvey:
		t.Route, t.Tab = "/wellness", "survey"
	case KindActivity:
		t.Route = "/activity"
	default:
		return EditTarget{}, fmt.Errorf("detail: no editor for kind %q", k)
	}
	return t, nil
}
