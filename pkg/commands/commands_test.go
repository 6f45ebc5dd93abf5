package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/fitlog/pkg/api"
	"tableflip.dev/fitlog/pkg/api/apitest"
	"tableflip.dev/fitlog/pkg/config"
	"tableflip.dev/fitlog/pkg/logging"
	"tableflip.dev/fitlog/pkg/record"
	"tableflip.dev/fitlog/pkg/runner/month"
	"tableflip.dev/fitlog/pkg/session"
)

const token = "MOCK-TOKEN"

func init() {
	color.NoColor = true
}

// backend points the commands at a seeded fake backend and a temp draft dir.
func backend(t *testing.T) *apitest.Server {
	t.Helper()
	srv := apitest.NewServer(token)
	t.Cleanup(srv.Close)
	srv.Seed(api.WorkoutSessions, record.WorkoutSession{ID: "w1", Date: "2024-03-15", WorkoutName: "Push"})
	srv.Seed(api.Stress, record.StressEntry{ID: "s1", Date: "2024-03-15", StressLevel: 4})
	srv.Seed(api.Exercises, record.Exercise{ID: "e1", Name: "Bench Press", Type: record.ExerciseStrength})

	cfg := &config.Config{APIURL: srv.URL, Token: token, DraftPath: t.TempDir()}
	prevCfg, prevLog := loadConfig, newLogger
	loadConfig = func() (*config.Config, error) { return cfg, nil }
	newLogger = func(string) (logging.Logger, error) { return logging.Nop(), nil }
	t.Cleanup(func() { loadConfig, newLogger = prevCfg, prevLog })
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalendarCommand(t *testing.T) {
	backend(t)
	out, err := execute(t, "calendar", "--month", "2024-03", "--json")
	require.NoError(t, err)

	var res month.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Days, 1)
	assert.Equal(t, "2024-03-15", res.Days[0].Date)
}

func TestCalendarBadCategory(t *testing.T) {
	backend(t)
	_, err := execute(t, "cal", "-c", "cardio")
	assert.Error(t, err)

	out, err := execute(t, "cal", "-c", "cardio", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"error"`)
}

func TestDeleteCommand(t *testing.T) {
	srv := backend(t)
	out, err := execute(t, "delete", "stress", "s1", "--on", "2024-03-15")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted stress s1.")
	assert.Contains(t, out, "Push")
	assert.Equal(t, 1, srv.Count(http.MethodDelete, "/api/stress/s1"))

	_, err = execute(t, "rm", "sleep", "x")
	assert.Error(t, err)
}

func TestSessionCommands(t *testing.T) {
	srv := backend(t)
	steps := [][]string{
		{"session", "new", "2024-03-16", "--draft", "legs"},
		{"session", "set", "--draft", "legs", "--name", "Push", "--exercise", "bench press"},
		{"session", "add-set", "10", "60", "--draft", "legs"},
		{"session", "commit", "--draft", "legs"},
	}
	for _, args := range steps {
		_, err := execute(t, args...)
		require.NoError(t, err, args)
	}

	out, err := execute(t, "session", "show", "--draft", "legs", "--json")
	require.NoError(t, err)
	var d session.Draft
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "2024-03-16", d.Session.Date)
	require.Len(t, d.Session.Exercises, 1)
	assert.Equal(t, "e1", d.Session.Exercises[0].ExerciseID)

	_, err = execute(t, "session", "save", "--draft", "legs")
	require.NoError(t, err)
	assert.Len(t, srv.Records(api.WorkoutSessions), 2)

	_, err = execute(t, "session", "show", "--draft", "legs")
	assert.Error(t, err)
}

func TestEditCommand(t *testing.T) {
	backend(t)
	out, err := execute(t, "edit", "workouts", "w1")
	require.NoError(t, err)
	assert.Contains(t, out, "/workouts?tab=sessions&edit=w1")
	assert.Contains(t, out, "Push (editing w1)")
}
