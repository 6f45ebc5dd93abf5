package exercises

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/fitlog/pkg/api"
	"tableflip.dev/fitlog/pkg/api/apitest"
	"tableflip.dev/fitlog/pkg/record"
)

const token = "MOCK-TOKEN"

func init() {
	color.NoColor = true
}

func client(t *testing.T) *api.Client {
	t.Helper()
	srv := apitest.NewServer(token)
	t.Cleanup(srv.Close)
	srv.Seed(api.Exercises,
		record.Exercise{ID: "e1", Name: "Bench Press", Type: record.ExerciseStrength, MuscleGroup: "chest"},
		record.Exercise{ID: "e2", Name: "Back Squat", Type: record.ExerciseStrength, MuscleGroup: "legs"},
		record.Exercise{ID: "e3", Name: "Rower", Type: record.ExerciseCardio},
	)
	srv.Seed(api.Splits, record.Split{ID: "ul", Name: "Upper Lower", Days: []string{"Chest", "Legs"}})
	c, err := api.New(srv.URL, token)
	require.NoError(t, err)
	return c
}

func names(t *testing.T, out *bytes.Buffer) []string {
	t.Helper()
	var list []record.Exercise
	require.NoError(t, json.Unmarshal(out.Bytes(), &list))
	var n []string
	for _, ex := range list {
		n = append(n, ex.Name)
	}
	return n
}

func TestExercisesFilter(t *testing.T) {
	c := client(t)
	tests := map[string]struct {
		split, day string
		want       []string
	}{
		"everything":   {want: []string{"Bench Press", "Back Squat", "Rower"}},
		"by type":      {day: "cardio", want: []string{"Rower"}},
		"split day":    {split: "upper lower", day: "legs", want: []string{"Back Squat"}},
		"split by id":  {split: "ul", day: "Chest", want: []string{"Bench Press"}},
		"split no day": {split: "ul", want: []string{"Bench Press", "Back Squat", "Rower"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			e := &Exercises{Catalog: c, Split: tc.split, Day: tc.day, JSON: true, Out: &out}
			require.NoError(t, e.Do(context.Background()))
			assert.Equal(t, tc.want, names(t, &out))
		})
	}
}

func TestExercisesSplitErrors(t *testing.T) {
	c := client(t)
	e := &Exercises{Catalog: c, Split: "bro", Out: &bytes.Buffer{}}
	assert.ErrorContains(t, e.Do(context.Background()), `no split "bro"`)

	e = &Exercises{Catalog: c, Split: "ul", Day: "arms", Out: &bytes.Buffer{}}
	assert.ErrorContains(t, e.Do(context.Background()), `has no day "arms"`)
}

func TestExercisesPretty(t *testing.T) {
	var out bytes.Buffer
	e := &Exercises{Catalog: client(t), Day: "nothing", Out: &out}
	require.NoError(t, e.Do(context.Background()))
	assert.Contains(t, out.String(), "no exercises")
}
