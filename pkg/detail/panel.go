package detail

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/record"
)

// Item is one record in the panel.
type Item struct {
	Kind  Kind     `json:"kind"`
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Lines []string `json:"lines,omitempty"`
	// Session is set for workouts so they can be loaded into a draft.
	Session *record.WorkoutSession `json:"-"`
}

// Edit returns the editor route for the item.
func (i Item) Edit() (EditTarget, error) {
	return EditTargetFor(i.Kind, i.ID)
}

// Section groups the items of one category.
type Section struct {
	Category bucket.Category `json:"category"`
	Title    string          `json:"title"`
	Items    []Item          `json:"items"`
}

// Panel is the drill-down for one date.
type Panel struct {
	Date     string    `json:"date"`
	Summary  string    `json:"summary"`
	Sections []Section `json:"sections"`
}

// Empty reports whether nothing was logged.
func (p Panel) Empty() bool { return len(p.Sections) == 0 }

// Find looks an item up by kind and id.
func (p Panel) Find(k Kind, id string) (Item, bool) {
	for _, s := range p.Sections {
		for _, it := range s.Items {
			if it.Kind == k && it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}

// Build makes the panel for day. Only non-empty categories get a section, in
// indicator order.
func Build(day bucket.CalendarDay) Panel {
	p := Panel{Date: day.Date, Summary: day.Summary(), Sections: []Section{}}
	logs := day.Logs

	if len(logs.Workouts) > 0 {
		s := Section{Category: bucket.CategoryWorkouts, Title: "Workouts"}
		for i := range logs.Workouts {
			s.Items = append(s.Items, workoutItem(logs.Workouts[i]))
		}
		p.Sections = append(p.Sections, s)
	}
	if len(logs.Nutrition) > 0 {
		s := Section{Category: bucket.CategoryNutrition, Title: "Nutrition"}
		for _, m := range logs.Nutrition {
			s.Items = append(s.Items, nutritionItem(m))
		}
		p.Sections = append(p.Sections, s)
	}
	if len(logs.Wellness) > 0 {
		s := Section{Category: bucket.CategoryWellness, Title: "Wellness"}
		for _, w := range logs.Wellness {
			s.Items = append(s.Items, wellnessItem(w))
		}
		p.Sections = append(p.Sections, s)
	}
	if len(logs.Activity) > 0 {
		s := Section{Category: bucket.CategoryActivity, Title: "Activity"}
		for _, a := range logs.Activity {
			s.Items = append(s.Items, activityItem(a))
		}
		p.Sections = append(p.Sections, s)
	}
	return p
}

func workoutItem(s record.WorkoutSession) Item {
	session := s
	it := Item{Kind: KindWorkout, ID: s.ID, Title: s.Title(), Session: &session}
	if s.SplitName != "" && s.SplitName != it.Title {
		it.Lines = append(it.Lines, "Split: "+s.SplitName)
	}
	for i := range s.Exercises {
		it.Lines = append(it.Lines, ExerciseLine(&s.Exercises[i]))
	}
	if len(s.Exercises) == 0 {
		it.Lines = append(it.Lines, "No exercises")
	}
	if s.Notes != "" {
		it.Lines = append(it.Lines, s.Notes)
	}
	return it
}

// ExerciseLine summarises one exercise, e.g. "Bench Press: 3 sets (10, 8x60kg, 6x65kg)".
func ExerciseLine(ex *record.SessionExercise) string {
	sets := ex.DetailedSets()
	parts := make([]string, len(sets))
	for i, set := range sets {
		parts[i] = SetText(set)
	}
	name := ex.ExerciseName
	if ex.IsCustom {
		name += " (custom)"
	}
	line := fmt.Sprintf("%s: %s", name, plural(len(sets), "set", "sets"))
	if len(parts) > 0 {
		line += " (" + strings.Join(parts, ", ") + ")"
	}
	return line
}

// SetText renders reps and optional weight, e.g. "8x60kg".
func SetText(s record.WorkoutSet) string {
	if s.Weight == nil {
		return strconv.Itoa(s.Reps)
	}
	return fmt.Sprintf("%dx%skg", s.Reps, num(*s.Weight))
}

func nutritionItem(m record.MacroEntry) Item {
	it := Item{Kind: KindNutrition, ID: m.ID, Title: "Macros"}
	cal, pro, carbs, fats := totals(m)
	it.Lines = append(it.Lines, fmt.Sprintf("%s kcal, %sg protein, %sg carbs, %sg fats", num(cal), num(pro), num(carbs), num(fats)))
	if len(m.FoodItems) > 0 {
		names := make([]string, len(m.FoodItems))
		for i, f := range m.FoodItems {
			names[i] = f.Name
		}
		it.Lines = append(it.Lines, strings.Join(names, ", "))
	}
	return it
}

// totals prefers the stored totals and sums the food items otherwise.
func totals(m record.MacroEntry) (cal, pro, carbs, fats float64) {
	for _, f := range m.FoodItems {
		cal += f.Calories
		pro += f.Protein
		if f.Carbs != nil {
			carbs += *f.Carbs
		}
		if f.Fats != nil {
			fats += *f.Fats
		}
	}
	if m.TotalCalories != nil {
		cal = *m.TotalCalories
	}
	if m.TotalProtein != nil {
		pro = *m.TotalProtein
	}
	if m.TotalCarbs != nil {
		carbs = *m.TotalCarbs
	}
	if m.TotalFats != nil {
		fats = *m.TotalFats
	}
	return cal, pro, carbs, fats
}

func wellnessItem(w record.Wellness) Item {
	it := Item{Kind: KindOfWellness(w), ID: w.ID()}
	switch w.Kind {
	case record.KindStress:
		it.Title = "Stress"
		it.Lines = append(it.Lines, fmt.Sprintf("Level %d/10", w.Stress.StressLevel))
		if w.Stress.Description != "" {
			it.Lines = append(it.Lines, w.Stress.Description)
		}
	case record.KindBodyFeeling:
		it.Title = "Body feeling"
		it.Lines = append(it.Lines, w.BodyFeeling.Description)
	default:
		it.Title = "Wellness survey"
		if w.Survey == nil {
			break
		}
		it.Lines = append(it.Lines, fmt.Sprintf("Fatigue %d/10, aches %d/10", w.Survey.FatigueLevel, w.Survey.AchesLevel))
		var extra []string
		if w.Survey.EnergyLevel != nil {
			extra = append(extra, fmt.Sprintf("energy %d/10", *w.Survey.EnergyLevel))
		}
		if w.Survey.SleepQuality != nil {
			extra = append(extra, fmt.Sprintf("sleep %d/10", *w.Survey.SleepQuality))
		}
		if w.Survey.Mood != nil {
			extra = append(extra, fmt.Sprintf("mood %d/10", *w.Survey.Mood))
		}
		if len(extra) > 0 {
			it.Lines = append(it.Lines, strings.Join(extra, ", "))
		}
	}
	return it
}

func activityItem(a record.PhysicalActivity) Item {
	it := Item{Kind: KindActivity, ID: a.ID, Title: a.Title()}
	var facts []string
	if a.Steps != nil {
		facts = append(facts, fmt.Sprintf("%d steps", *a.Steps))
	}
	if a.IsWholeDay {
		facts = append(facts, "whole day")
	} else if a.DurationMinutes != nil {
		facts = append(facts, fmt.Sprintf("%d min", *a.DurationMinutes))
	}
	if a.IntensityLevel != nil {
		facts = append(facts, fmt.Sprintf("intensity %d/10", *a.IntensityLevel))
	}
	if len(facts) > 0 {
		it.Lines = append(it.Lines, strings.Join(facts, ", "))
	}
	if a.Description != "" {
		it.Lines = append(it.Lines, a.Description)
	}
	return it
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
