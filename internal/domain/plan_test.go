package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleEntrySetStatus_CompletedSetsTimestamp(t *testing.T) {
	e := &ScheduleEntry{Status: EntryPending}
	require.NoError(t, e.SetStatus(EntryCompleted, testNow))
	require.NotNil(t, e.CompletedAt)
	assert.Equal(t, testNow, *e.CompletedAt)

	later := testNow.Add(time.Hour)
	require.NoError(t, e.SetStatus(EntryCompleted, later))
	assert.Equal(t, testNow, *e.CompletedAt, "should not overwrite existing CompletedAt")
}

func TestScheduleEntrySetStatus_LeavingCompletedClearsTimestamp(t *testing.T) {
	done := testNow
	e := &ScheduleEntry{Status: EntryCompleted, CompletedAt: &done}
	require.NoError(t, e.SetStatus(EntrySkipped, testNow))
	assert.Nil(t, e.CompletedAt)
	assert.Equal(t, EntrySkipped, e.Status)
}

func TestScheduleEntrySetStatus_Invalid(t *testing.T) {
	e := &ScheduleEntry{Status: EntryPending}
	require.Error(t, e.SetStatus("done", testNow))
	assert.Equal(t, EntryPending, e.Status)
}

func TestJournalEntryValidate_RatingBounds(t *testing.T) {
	zero, eleven, five := 0, 11, 5
	assert.Error(t, (&JournalEntry{Content: "x", Energy: &zero}).Validate())
	assert.Error(t, (&JournalEntry{Content: "x", Sleep: &eleven}).Validate())
	assert.NoError(t, (&JournalEntry{Content: "x", Energy: &five, Sleep: &five}).Validate())
	assert.Error(t, (&JournalEntry{Content: "  "}).Validate())
}

func TestDailyFeedbackValidate(t *testing.T) {
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, (&DailyFeedback{PlanDate: day, Rating: FeedbackTooMuch}).Validate())
	assert.Error(t, (&DailyFeedback{PlanDate: day, Rating: "great"}).Validate())
	assert.Error(t, (&DailyFeedback{Rating: FeedbackAboutRight}).Validate())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "morning walk", NormalizeName("  Morning Walk\t"))
}
