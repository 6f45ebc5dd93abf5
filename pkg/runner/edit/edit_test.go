package edit

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
	"tableflip.dev/fitlog/pkg/detail"
	"tableflip.dev/fitlog/pkg/record"
	"tableflip.dev/fitlog/pkg/store"
)

const token = "MOCK-TOKEN"

func init() {
	color.NoColor = true
}

type dirConfig string

func (d dirConfig) BasePath() string { return string(d) }

func client(t *testing.T) *api.Client {
	t.Helper()
	srv := apitest.NewServer(token)
	t.Cleanup(srv.Close)
	reps := 8
	srv.Seed(api.WorkoutSessions, record.WorkoutSession{
		ID: "w1", Date: "2024-03-15", WorkoutName: "Legs",
		Exercises: []record.SessionExercise{{
			ExerciseID: "e1", ExerciseName: "Squat", Sets: record.CountSets(3), Reps: &reps,
		}},
	})
	c, err := api.New(srv.URL, token)
	require.NoError(t, err)
	return c
}

func TestEditWorkoutLoadsDraft(t *testing.T) {
	c := client(t)
	drafts, err := store.Load(dirConfig(t.TempDir()))
	require.NoError(t, err)

	var out bytes.Buffer
	e := &Edit{Sessions: c.Sessions(), Drafts: drafts, DraftName: "legs", Kind: detail.KindWorkout, ID: "w1", JSON: true, Out: &out}
	require.NoError(t, e.Do(context.Background()))

	var res Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "legs", res.Draft)
	assert.Equal(t, "/workouts?tab=sessions&edit=w1", res.Target.String())

	d, ok, err := drafts.Load("legs")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "w1", d.EditID)
	require.Len(t, d.Session.Exercises, 1)
	// legacy counts are expanded when the session is loaded
	assert.Len(t, d.Session.Exercises[0].Sets.Detailed(), 3)
}

func TestEditWellnessPrintsRoute(t *testing.T) {
	var out bytes.Buffer
	e := &Edit{Kind: detail.KindStress, ID: "s1", Out: &out}
	require.NoError(t, e.Do(context.Background()))
	assert.Contains(t, out.String(), "/wellness?tab=stress&edit=s1")
}

func TestEditUnknown(t *testing.T) {
	c := client(t)
	drafts, err := store.Load(dirConfig(t.TempDir()))
	require.NoError(t, err)

	e := &Edit{Sessions: c.Sessions(), Drafts: drafts, Kind: detail.KindWorkout, ID: "missing", Out: &bytes.Buffer{}}
	assert.Error(t, e.Do(context.Background()))

	e = &Edit{Kind: detail.Kind("sleep"), ID: "x", Out: &bytes.Buffer{}}
	assert.Error(t, e.Do(context.Background()))
}
