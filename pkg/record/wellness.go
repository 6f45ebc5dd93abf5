package record

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StressEntry records a stress level for a day.
type StressEntry struct {
	ID          string `json:"id,omitempty"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StressLevel int    `json:"stress_level" validate:"gte=1,lte=10"`
	Description string `json:"description,omitempty"`
}

// BodyFeeling is a free-text note about how the body feels.
type BodyFeeling struct {
	ID          string `json:"id,omitempty"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required"`
}

// WellnessSurvey is the daily fatigue/aches questionnaire.
type WellnessSurvey struct {
	ID           string `json:"id,omitempty"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	FatigueLevel int    `json:"fatigue_level" validate:"gte=1,lte=10"`
	AchesLevel   int    `json:"aches_level" validate:"gte=1,lte=10"`
	EnergyLevel  *int   `json:"energy_level,omitempty" validate:"omitempty,gte=1,lte=10"`
	SleepQuality *int   `json:"sleep_quality,omitempty" validate:"omitempty,gte=1,lte=10"`
	Mood         *int   `json:"mood,omitempty" validate:"omitempty,gte=1,lte=10"`
}

// WellnessKind tags which wellness collection a record belongs to.
type WellnessKind string

const (
	KindStress      WellnessKind = "stress"
	KindBodyFeeling WellnessKind = "body-feeling"
	KindSurvey      WellnessKind = "wellness-survey"
)

// Wellness is one of the three wellness records with an explicit kind.
// Exactly one of the pointers is set, matching Kind.
type Wellness struct {
	Kind        WellnessKind
	Stress      *StressEntry
	BodyFeeling *BodyFeeling
	Survey      *WellnessSurvey
}

// StressWellness tags a stress entry.
func StressWellness(s StressEntry) Wellness {
	return Wellness{Kind: KindStress, Stress: &s}
}

// BodyFeelingWellness tags a body-feeling entry.
func BodyFeelingWellness(b BodyFeeling) Wellness {
	return Wellness{Kind: KindBodyFeeling, BodyFeeling: &b}
}

// SurveyWellness tags a wellness survey.
func SurveyWellness(s WellnessSurvey) Wellness {
	return Wellness{Kind: KindSurvey, Survey: &s}
}

// ID returns the underlying record id, empty when the variant is unset.
func (w Wellness) ID() string {
	switch {
	case w.Kind == KindStress && w.Stress != nil:
		return w.Stress.ID
	case w.Kind == KindBodyFeeling && w.BodyFeeling != nil:
		return w.BodyFeeling.ID
	case w.Kind == KindSurvey && w.Survey != nil:
		return w.Survey.ID
	}
	return ""
}

// Date returns the underlying record date, empty when the variant is unset.
func (w Wellness) Date() string {
	switch {
	case w.Kind == KindStress && w.Stress != nil:
		return w.Stress.Date
	case w.Kind == KindBodyFeeling && w.BodyFeeling != nil:
		return w.BodyFeeling.Date
	case w.Kind == KindSurvey && w.Survey != nil:
		return w.Survey.Date
	}
	return ""
}

// Description returns the free text attached to the record, if any.
func (w Wellness) Description() string {
	switch {
	case w.Kind == KindStress && w.Stress != nil:
		return w.Stress.Description
	case w.Kind == KindBodyFeeling && w.BodyFeeling != nil:
		return w.BodyFeeling.Description
	}
	return ""
}

func (w Wellness) record() (any, error) {
	switch {
	case w.Kind == KindStress && w.Stress != nil:
		return w.Stress, nil
	case w.Kind == KindBodyFeeling && w.BodyFeeling != nil:
		return w.BodyFeeling, nil
	case w.Kind == KindSurvey && w.Survey != nil:
		return w.Survey, nil
	}
	return nil, fmt.Errorf("record: wellness kind %q has no matching record", w.Kind)
}

// MarshalJSON writes the underlying record with an added "kind" field.
func (w Wellness) MarshalJSON() ([]byte, error) {
	rec, err := w.record()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	kind, _ := json.Marshal(w.Kind)
	fields["kind"] = kind
	return json.Marshal(fields)
}

// UnmarshalJSON honours an explicit "kind" field and otherwise falls back to
// ClassifyWellness.
func (w *Wellness) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeWellness(data)
	if err != nil {
		return err
	}
	*w = decoded
	return nil
}

// DecodeWellness decodes a wellness payload, tagged or not.
func DecodeWellness(data []byte) (Wellness, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return Wellness{}, fmt.Errorf("record: decode wellness: %w", err)
	}
	kind := ClassifyWellness(fields)
	if raw, ok := fields["kind"]; ok {
		var explicit WellnessKind
		if err := json.Unmarshal(raw, &explicit); err != nil {
			return Wellness{}, fmt.Errorf("record: decode wellness kind: %w", err)
		}
		switch explicit {
		case KindStress, KindBodyFeeling, KindSurvey:
			kind = explicit
		default:
			return Wellness{}, fmt.Errorf("record: unknown wellness kind %q", explicit)
		}
	}

	w := Wellness{Kind: kind}
	var err error
	switch kind {
	case KindStress:
		w.Stress = &StressEntry{}
		err = json.Unmarshal(data, w.Stress)
	case KindBodyFeeling:
		w.BodyFeeling = &BodyFeeling{}
		err = json.Unmarshal(data, w.BodyFeeling)
	default:
		w.Survey = &WellnessSurvey{}
		err = json.Unmarshal(data, w.Survey)
	}
	if err != nil {
		return Wellness{}, fmt.Errorf("record: decode %s: %w", kind, err)
	}
	return w, nil
}

// ClassifyWellness infers the kind of an untagged wellness payload from which
// fields are present. Rules apply in order, first match wins:
//
//  1. stress_level present: stress
//  2. description present and fatigue_level absent: body-feeling
//  3. otherwise: wellness-survey
//
// A key is present when it appears at all, even with a JSON null.
func ClassifyWellness(fields map[string]json.RawMessage) WellnessKind {
	switch {
	case present(fields, "stress_level"):
		return KindStress
	case present(fields, "description") && !present(fields, "fatigue_level"):
		return KindBodyFeeling
	default:
		return KindSurvey
	}
}

func present(fields map[string]json.RawMessage, key string) bool {
	_, ok := fields[key]
	return ok
}

// ErrNoWellnessRecord is returned when validating an empty Wellness value.
var ErrNoWellnessRecord = errors.New("record: wellness has no record")

// ValidateWellness validates the underlying record of w.
func ValidateWellness(w Wellness) error {
	rec, err := w.record()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoWellnessRecord, err)
	}
	return Validate(rec)
}
