package month

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/fitlog/pkg/api"
	"tableflip.dev/fitlog/pkg/api/apitest"
	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/record"
)

const token = "MOCK-TOKEN"

func init() {
	color.NoColor = true
}

func seeded(t *testing.T) (*apitest.Server, *api.Client) {
	t.Helper()
	srv := apitest.NewServer(token)
	t.Cleanup(srv.Close)
	srv.Seed(api.WorkoutSessions, record.WorkoutSession{ID: "w1", Date: "2024-03-15", WorkoutName: "Push"})
	srv.Seed(api.Macros, record.MacroEntry{ID: "m1", Date: "2024-03-02"})
	srv.Seed(api.Stress, record.StressEntry{ID: "s1", Date: "2024-03-15", StressLevel: 4})
	srv.Seed(api.WellnessSurveys, record.WellnessSurvey{ID: "q1", Date: "2024-04-03", FatigueLevel: 3, AchesLevel: 2})
	c, err := api.New(srv.URL, token)
	require.NoError(t, err)
	return srv, c
}

func march() time.Time { return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC) }

func TestMonthJSON(t *testing.T) {
	_, c := seeded(t)
	var out bytes.Buffer
	m := &Month{Source: c, Month: march(), JSON: true, Out: &out}
	require.NoError(t, m.Do(context.Background()))

	var res Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "2024-03", res.Month)
	assert.Equal(t, "2024-03-01", res.Start)
	assert.Equal(t, "2024-03-31", res.End)
	assert.Equal(t, bucket.CategoryAll, res.Category)
	require.Len(t, res.Days, 2)
	assert.Equal(t, "2024-03-02", res.Days[0].Date)
	assert.Equal(t, []bucket.Category{bucket.CategoryNutrition}, res.Days[0].Indicators)
	assert.Equal(t, "2024-03-15", res.Days[1].Date)
	assert.Equal(t, []bucket.Category{bucket.CategoryWorkouts, bucket.CategoryWellness}, res.Days[1].Indicators)
	assert.Equal(t, "1 workout, 0 nutrition logs, 1 wellness entry, 0 activities", res.Days[1].Summary)
}

func TestMonthCategoryFilter(t *testing.T) {
	_, c := seeded(t)
	var out bytes.Buffer
	m := &Month{Source: c, Month: march(), Category: bucket.CategoryWorkouts, JSON: true, Out: &out}
	require.NoError(t, m.Do(context.Background()))

	var res Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Len(t, res.Days, 1)
	assert.Equal(t, "2024-03-15", res.Days[0].Date)
}

func TestMonthPretty(t *testing.T) {
	_, c := seeded(t)
	var out bytes.Buffer
	m := &Month{Source: c, Month: march(), Out: &out}
	require.NoError(t, m.Do(context.Background()))

	s := out.String()
	assert.Contains(t, s, "March 2024")
	assert.Contains(t, s, "2024-03-02  0 workouts, 1 nutrition log, 0 wellness entries, 0 activities")
	assert.NotContains(t, s, "2024-04-03")
}

func TestMonthFetchFailure(t *testing.T) {
	srv, c := seeded(t)
	srv.Fail(api.Stress, http.StatusInternalServerError)

	var out bytes.Buffer
	m := &Month{Source: c, Month: march(), Out: &out}
	require.NoError(t, m.Do(context.Background()))
	assert.Contains(t, out.String(), "no logs this month")

	m = &Month{Source: c, Month: march(), Strict: true, Out: &out}
	err := m.Do(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "March 2024")
}
