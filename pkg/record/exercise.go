package record

// ExerciseType classifies catalog exercises.
type ExerciseType string

const (
	ExerciseCardio   ExerciseType = "cardio"
	ExerciseStrength ExerciseType = "strength"
	ExerciseCustom   ExerciseType = "custom"
)

// Exercise is a reusable catalog definition.
type Exercise struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name" validate:"required"`
	Type        ExerciseType `json:"type" validate:"required,oneof=cardio strength custom"`
	MuscleGroup string       `json:"muscle_group,omitempty"`
	Description string       `json:"description,omitempty"`
	IsCustom    bool         `json:"is_custom,omitempty"`
}

// Split is a named training split whose days narrow the catalog while
// composing a session.
type Split struct {
	ID   string   `json:"id,omitempty"`
	Name string   `json:"name" validate:"required"`
	Days []string `json:"days"`
}
