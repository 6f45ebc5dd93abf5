package day

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
)

const token = "MOCK-TOKEN"

func init() {
	color.NoColor = true
}

func client(t *testing.T) *api.Client {
	t.Helper()
	srv := apitest.NewServer(token)
	t.Cleanup(srv.Close)
	srv.Seed(api.WorkoutSessions,
		record.WorkoutSession{ID: "w1", Date: "2024-03-15", WorkoutName: "Push"},
		record.WorkoutSession{ID: "w2", Date: "2024-03-16", WorkoutName: "Pull"},
	)
	srv.Seed(api.BodyFeelings, record.BodyFeeling{ID: "b1", Date: "2024-03-15", Description: "sore shoulders"})
	srv.Seed(api.Sleep,
		record.SleepEntry{ID: "z1", Date: "2024-03-15", HoursSlept: 7.5},
		record.SleepEntry{ID: "z2", Date: "2024-03-16", HoursSlept: 5},
	)
	srv.Seed(api.Hydration, record.HydrationEntry{ID: "h1", Date: "2024-03-16", AmountML: 2000})
	c, err := api.New(srv.URL, token)
	require.NoError(t, err)
	return c
}

func TestDayJSON(t *testing.T) {
	c := client(t)
	var out bytes.Buffer
	d := &Day{Source: c.OnDate("2024-03-15"), Date: "2024-03-15", JSON: true, Out: &out}
	require.NoError(t, d.Do(context.Background()))

	var panel detail.Panel
	require.NoError(t, json.Unmarshal(out.Bytes(), &panel))
	assert.Equal(t, "2024-03-15", panel.Date)
	require.Len(t, panel.Sections, 2)
	assert.Equal(t, "Workouts", panel.Sections[0].Title)
	require.Len(t, panel.Sections[0].Items, 1)
	assert.Equal(t, "w1", panel.Sections[0].Items[0].ID)
	assert.Equal(t, "Wellness", panel.Sections[1].Title)
}

func TestDayPretty(t *testing.T) {
	c := client(t)
	var out bytes.Buffer
	d := &Day{Source: c, Date: "2024-03-16", ShowID: true, Out: &out}
	require.NoError(t, d.Do(context.Background()))
	assert.Contains(t, out.String(), "Pull")
	assert.Contains(t, out.String(), "w2")
	assert.NotContains(t, out.String(), "Push")
}

func TestDayEmptyAndInvalid(t *testing.T) {
	c := client(t)
	var out bytes.Buffer
	d := &Day{Source: c, Date: "2024-03-20", Out: &out}
	require.NoError(t, d.Do(context.Background()))
	assert.Contains(t, out.String(), "No logs for this date")

	d = &Day{Source: c, Date: "03/20", Out: &out}
	assert.Error(t, d.Do(context.Background()))
}

func TestDayExtras(t *testing.T) {
	c := client(t)
	var out bytes.Buffer
	src := c.OnDate("2024-03-15")
	d := &Day{Source: src, Extras: src, Date: "2024-03-15", JSON: true, Out: &out}
	require.NoError(t, d.Do(context.Background()))

	var got struct {
		Date      string                  `json:"date"`
		Sleep     []record.SleepEntry     `json:"sleep"`
		Hydration []record.HydrationEntry `json:"hydration"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "2024-03-15", got.Date)
	require.Len(t, got.Sleep, 1)
	assert.Equal(t, "z1", got.Sleep[0].ID)
	assert.Empty(t, got.Hydration)

	// An unfiltered client still only shows the requested date.
	out.Reset()
	d = &Day{Source: c, Extras: c, Date: "2024-03-16", Out: &out}
	require.NoError(t, d.Do(context.Background()))
	assert.Contains(t, out.String(), "5h slept")
	assert.Contains(t, out.String(), "2000 ml")
	assert.NotContains(t, out.String(), "7.5h slept")
}
