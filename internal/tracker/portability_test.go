package tracker_test

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/tabebui/internal/error_values"
	"github.com/limbo/tabebui/internal/tracker"
	"github.com/limbo/tabebui/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := newTracker("2024-01-10")
	_, err := src.RecordEvent(tracker.RecordInput{PartID: "beef_2", Date: "2024-01-09", Rating: rating(5), Memo: "melts"})
	require.NoError(t, err)
	record(t, src, "pork_7", "2024-01-10")
	_, err = src.AwardExperience(160)
	require.NoError(t, err)
	src.EvaluateBadges()

	snapshot := src.Export()
	assert.Equal(t, tracker.SnapshotVersion, snapshot.Version)
	assert.Equal(t, "2024-01-10T12:00:00Z", snapshot.ExportDate)
	assert.Equal(t, []string{"beef_2", "pork_7"}, snapshot.EatenParts)

	data, err := sonic.Marshal(snapshot)
	require.NoError(t, err)
	parsed, err := tracker.ParseSnapshot(data)
	require.NoError(t, err)

	dst := newTracker("2024-01-10")
	record(t, dst, "chicken_1", "2024-01-01")
	require.NoError(t, dst.Import(parsed))

	assert.Equal(t, src.Events(), dst.Events())
	assert.Equal(t, src.CompletedParts(), dst.CompletedParts())
	assert.Equal(t, src.Experience(), dst.Experience())
	assert.Equal(t, src.Level(), dst.Level())
	assert.Equal(t, src.EarnedBadges(), dst.EarnedBadges())
	assert.False(t, dst.IsEaten("chicken_1"))
	assertCompletionMatchesLog(t, dst)
}

func TestExportOfEmptyTracker(t *testing.T) {
	snapshot := newTracker("2024-01-10").Export()
	require.NotNil(t, snapshot.Records)
	assert.Empty(t, *snapshot.Records)
	data, err := sonic.Marshal(snapshot)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"records":[]`)
}

func TestImportRecomputesDerivedState(t *testing.T) {
	events := []entity.EatingEvent{
		{PartID: "beef_1", Date: "2024-01-02"},
		{ID: uuid.New(), PartID: "beef_1", Date: "2024-01-03"},
	}
	tr := newTracker("2024-01-10")
	err := tr.Import(entity.Snapshot{
		Version:        "1.0",
		Records:        &events,
		EatenParts:     []string{"pork_1", "pork_2"},
		UserLevel:      9,
		UserExperience: 250,
		UserBadges:     []entity.BadgeID{tracker.BadgeFirstStep, tracker.BadgeFirstStep},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"beef_1"}, tr.CompletedParts())
	assert.Equal(t, 3, tr.Level())
	assert.Equal(t, []entity.BadgeID{tracker.BadgeFirstStep}, tr.EarnedBadges())
	for _, e := range tr.Events() {
		assert.NotEqual(t, uuid.Nil, e.ID)
	}
}

func TestImportRejectionLeavesStateUnchanged(t *testing.T) {
	dup := uuid.New()
	testCases := []struct {
		Desc string
		Data string
	}{
		{Desc: "missing version", Data: `{"records":[],"userExperience":10}`},
		{Desc: "missing records", Data: `{"version":"1.0","userExperience":10}`},
		{Desc: "negative experience", Data: `{"version":"1.0","records":[],"userExperience":-1}`},
		{Desc: "unknown part", Data: `{"version":"1.0","records":[{"partId":"goat_1","date":"2024-01-01"}]}`},
		{Desc: "malformed date", Data: `{"version":"1.0","records":[{"partId":"beef_1","date":"2024-13-01"}]}`},
		{Desc: "dated after today", Data: `{"version":"1.0","records":[{"partId":"beef_1","date":"2024-01-09"},{"partId":"beef_1","date":"2099-12-31"}]}`},
		{Desc: "rating out of range", Data: `{"version":"1.0","records":[{"partId":"beef_1","date":"2024-01-01","rating":0}]}`},
		{Desc: "duplicate ids", Data: `{"version":"1.0","records":[{"id":"` + dup.String() + `","partId":"beef_1","date":"2024-01-01"},{"id":"` + dup.String() + `","partId":"beef_2","date":"2024-01-01"}]}`},
		{Desc: "not json", Data: `version: 1.0`},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tr := newTracker("2024-01-10")
			res := record(t, tr, "pork_4", "2024-01-05")
			_, err := tr.AwardExperience(40)
			require.NoError(t, err)
			tr.EvaluateBadges()
			before := tr.State()

			var s entity.Snapshot
			if err := sonic.Unmarshal([]byte(tc.Data), &s); err == nil {
				err = tr.Import(s)
				assert.ErrorIs(t, err, errorvalues.ErrInvalidFormat)
			}
			_, err = tracker.ParseSnapshot([]byte(tc.Data))
			if tc.Desc == "unknown part" || tc.Desc == "malformed date" || tc.Desc == "dated after today" || tc.Desc == "rating out of range" || tc.Desc == "duplicate ids" {
				assert.NoError(t, err, "decoding alone accepts it")
			} else {
				assert.ErrorIs(t, err, errorvalues.ErrInvalidFormat)
			}

			assert.Equal(t, before, tr.State())
			assert.True(t, tr.IsEaten(res.Event.PartID))
		})
	}
}
