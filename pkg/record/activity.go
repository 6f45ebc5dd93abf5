package record

// PhysicalActivity is a non-gym activity log (steps, a hike, a match).
type PhysicalActivity struct {
	ID              string `json:"id,omitempty"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Steps           *int   `json:"steps,omitempty" validate:"omitempty,gte=0"`
	ActivityType    string `json:"activity_type,omitempty"`
	Description     string `json:"description,omitempty"`
	DurationMinutes *int   `json:"duration_minutes,omitempty" validate:"omitempty,gte=0"`
	IsWholeDay      bool   `json:"is_whole_day,omitempty"`
	IntensityLevel  *int   `json:"intensity_level,omitempty" validate:"omitempty,gte=1,lte=10"`
}

// Title is the display name of the activity.
func (a *PhysicalActivity) Title() string {
	if a.ActivityType != "" {
		return a.ActivityType
	}
	return "Activity"
}

// SleepEntry is a night of sleep.
type SleepEntry struct {
	ID         string  `json:"id,omitempty"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	HoursSlept float64 `json:"hours_slept" validate:"gte=0,lte=24"`
	Quality    *int    `json:"quality,omitempty" validate:"omitempty,gte=1,lte=10"`
	Bedtime    string  `json:"bedtime,omitempty"`
	WakeTime   string  `json:"wake_time,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}
