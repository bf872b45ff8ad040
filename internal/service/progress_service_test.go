package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/tabebui/internal/error_values"
	repomocks "github.com/limbo/tabebui/internal/repository/mocks"
	"github.com/limbo/tabebui/internal/service"
	servicemocks "github.com/limbo/tabebui/internal/service/mocks"
	"github.com/limbo/tabebui/internal/tracker"
	"github.com/limbo/tabebui/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, opts ...service.Option) (*service.ProgressService, *repomocks.MockStateRepositoryI) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockStateRepositoryI(ctrl)
	base := []service.Option{
		service.WithTrackerOptions(tracker.WithClock(fixedClock)),
		service.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	return service.NewProgressService(repo, append(base, opts...)...), repo
}

func rating(r int) *int {
	return &r
}

func eventOn(partID, date string) entity.EatingEvent {
	return entity.EatingEvent{ID: uuid.New(), PartID: partID, Date: date, CreatedAt: fixedClock()}
}

func badgeIDs(badges []entity.Badge) []entity.BadgeID {
	out := make([]entity.BadgeID, 0, len(badges))
	for _, b := range badges {
		out = append(out, b.ID)
	}
	return out
}

func TestRecordMeal(t *testing.T) {
	serv, repo := newTestService(t)
	ctx := context.Background()
	testCases := []struct {
		Desc         string
		Error        error
		Req          *service.RecordMealRequest
		MockPrepFunc func(userID uuid.UUID)
		Check        func(t *testing.T, out *service.RecordOutcome)
	}{
		{
			Desc:  "new rare part",
			Error: nil,
			Req:   &service.RecordMealRequest{PartID: "beef_1", Date: "2024-01-09", Rating: rating(5), Memo: "juicy"},
			MockPrepFunc: func(userID uuid.UUID) {
				repo.EXPECT().Load(gomock.Any(), userID).Return(nil, errorvalues.ErrStateNotFound)
				repo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
			},
			Check: func(t *testing.T, out *service.RecordOutcome) {
				assert.True(t, out.IsNewPart)
				assert.Equal(t, 25, out.ExperienceGained)
				assert.Equal(t, 1, out.Level)
				assert.False(t, out.LevelUp)
				assert.Equal(t, "juicy", out.Event.Memo)
				assert.Equal(t, []entity.BadgeID{tracker.BadgeFirstStep, tracker.BadgeAdventurer}, badgeIDs(out.NewBadges))
			},
		},
		{
			Desc:  "repeat part",
			Error: nil,
			Req:   &service.RecordMealRequest{PartID: "beef_4", Date: "2024-01-08"},
			MockPrepFunc: func(userID uuid.UUID) {
				repo.EXPECT().Load(gomock.Any(), userID).Return(&entity.ProgressState{
					Events:     []entity.EatingEvent{eventOn("beef_4", "2024-01-01")},
					Experience: 10,
					Level:      1,
					Badges:     []entity.BadgeID{tracker.BadgeFirstStep},
				}, nil)
				repo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
			},
			Check: func(t *testing.T, out *service.RecordOutcome) {
				assert.False(t, out.IsNewPart)
				assert.Equal(t, 5, out.ExperienceGained)
				assert.Empty(t, out.NewBadges)
			},
		},
		{
			Desc:  "empty date means today",
			Error: nil,
			Req:   &service.RecordMealRequest{PartID: "pork_1"},
			MockPrepFunc: func(userID uuid.UUID) {
				repo.EXPECT().Load(gomock.Any(), userID).Return(nil, errorvalues.ErrStateNotFound)
				repo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
			},
			Check: func(t *testing.T, out *service.RecordOutcome) {
				assert.Equal(t, "2024-01-10", out.Event.Date)
				assert.Contains(t, badgeIDs(out.NewBadges), tracker.BadgeTodayRecord)
			},
		},
		{
			Desc:  "level up",
			Error: nil,
			Req:   &service.RecordMealRequest{PartID: "pork_2", Date: "2024-01-05"},
			MockPrepFunc: func(userID uuid.UUID) {
				repo.EXPECT().Load(gomock.Any(), userID).Return(&entity.ProgressState{Experience: 95, Level: 1}, nil)
				repo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
			},
			Check: func(t *testing.T, out *service.RecordOutcome) {
				assert.Equal(t, 10, out.ExperienceGained)
				assert.Equal(t, 2, out.Level)
				assert.True(t, out.LevelUp)
			},
		},
		{
			Desc:  "completing an animal",
			Error: nil,
			Req:   &service.RecordMealRequest{PartID: "chicken_8", Date: "2024-01-02"},
			MockPrepFunc: func(userID uuid.UUID) {
				events := make([]entity.EatingEvent, 0, 7)
				for _, id := range []string{"chicken_1", "chicken_2", "chicken_3", "chicken_4", "chicken_5", "chicken_6", "chicken_7"} {
					events = append(events, eventOn(id, "2024-01-01"))
				}
				repo.EXPECT().Load(gomock.Any(), userID).Return(&entity.ProgressState{
					Events:     events,
					Experience: 70,
					Badges:     []entity.BadgeID{tracker.BadgeFirstStep},
				}, nil)
				repo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ uuid.UUID, state *entity.ProgressState) error {
						assert.Len(t, state.Completed, 8)
						assert.Equal(t, 130, state.Experience)
						assert.Equal(t, 2, state.Level)
						return nil
					})
			},
			Check: func(t *testing.T, out *service.RecordOutcome) {
				assert.Equal(t, 60, out.ExperienceGained)
				assert.True(t, out.LevelUp)
				assert.Equal(t, []entity.BadgeID{tracker.BadgeChickenMaster}, badgeIDs(out.NewBadges))
			},
		},
		{
			Desc:         "rating out of range",
			Error:        errorvalues.ErrInvalidArgument,
			Req:          &service.RecordMealRequest{PartID: "beef_1", Date: "2024-01-09", Rating: rating(7)},
			MockPrepFunc: func(uuid.UUID) {},
		},
		{
			Desc:         "malformed date",
			Error:        errorvalues.ErrInvalidArgument,
			Req:          &service.RecordMealRequest{PartID: "beef_1", Date: "2024/01/09"},
			MockPrepFunc: func(uuid.UUID) {},
		},
		{
			Desc:         "malformed part id",
			Error:        errorvalues.ErrInvalidArgument,
			Req:          &service.RecordMealRequest{PartID: "Beef 1"},
			MockPrepFunc: func(uuid.UUID) {},
		},
		{
			Desc:         "nil request",
			Error:        errorvalues.ErrInvalidArgument,
			Req:          nil,
			MockPrepFunc: func(uuid.UUID) {},
		},
		{
			Desc:  "future date",
			Error: errorvalues.ErrInvalidArgument,
			Req:   &service.RecordMealRequest{PartID: "beef_1", Date: "2024-01-11"},
			MockPrepFunc: func(userID uuid.UUID) {
				repo.EXPECT().Load(gomock.Any(), userID).Return(nil, errorvalues.ErrStateNotFound)
			},
		},
		{
			Desc:  "unknown part",
			Error: errorvalues.ErrNotFound,
			Req:   &service.RecordMealRequest{PartID: "horse_1", Date: "2024-01-09"},
			MockPrepFunc: func(userID uuid.UUID) {
				repo.EXPECT().Load(gomock.Any(), userID).Return(nil, errorvalues.ErrStateNotFound)
			},
		},
		{
			Desc:  "load failure",
			Error: errorvalues.ErrStorage,
			Req:   &service.RecordMealRequest{PartID: "beef_1", Date: "2024-01-09"},
			MockPrepFunc: func(userID uuid.UUID) {
				repo.EXPECT().Load(gomock.Any(), userID).Return(nil, errors.New("db down"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			userID := uuid.New()
			tc.MockPrepFunc(userID)
			out, err := serv.RecordMeal(ctx, userID, tc.Req)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error != nil {
				assert.Nil(t, out)
				return
			}
			require.NotNil(t, out)
			tc.Check(t, out)
		})
	}
}

func TestRecordMealSaveFailureKeepsState(t *testing.T) {
	serv, repo := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	repo.EXPECT().Load(gomock.Any(), userID).Return(nil, errorvalues.ErrStateNotFound)
	repo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(errors.New("disk full"))

	out, err := serv.RecordMeal(ctx, userID, &service.RecordMealRequest{PartID: "beef_4", Date: "2024-01-09"})
	assert.ErrorIs(t, err, errorvalues.ErrStorage)
	require.NotNil(t, out)
	assert.Equal(t, 10, out.ExperienceGained)

	p, err := serv.Progression(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Experience)
	records, err := serv.Records(ctx, userID, service.RecordsFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestUpdateMeal(t *testing.T) {
	serv, repo := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := eventOn("beef_4", "2024-01-05")
	existing.Rating = rating(3)
	repo.EXPECT().Load(gomock.Any(), userID).Return(&entity.ProgressState{
		Events: []entity.EatingEvent{existing},
		Badges: []entity.BadgeID{tracker.BadgeFirstStep},
	}, nil)
	repo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil).Times(2)

	partID := "beef_2"
	out, err := serv.UpdateMeal(ctx, userID, existing.ID, &service.UpdateMealRequest{PartID: &partID})
	require.NoError(t, err)
	assert.Equal(t, "beef_2", out.Event.PartID)
	assert.Equal(t, 3, *out.Event.Rating)
	assert.Equal(t, []entity.BadgeID{tracker.BadgeAdventurer}, badgeIDs(out.NewBadges))

	out, err = serv.UpdateMeal(ctx, userID, existing.ID, &service.UpdateMealRequest{ClearRating: true})
	require.NoError(t, err)
	assert.Nil(t, out.Event.Rating)

	eaten, err := serv.EatenParts(ctx, userID)
	require.NoError(t, err)
	assert.True(t, eaten["beef_2"])
	assert.False(t, eaten["beef_4"])

	_, err = serv.UpdateMeal(ctx, userID, uuid.New(), &service.UpdateMealRequest{})
	assert.ErrorIs(t, err, errorvalues.ErrEventNotFound)

	badDate := "yesterday"
	_, err = serv.UpdateMeal(ctx, userID, existing.ID, &service.UpdateMealRequest{Date: &badDate})
	assert.ErrorIs(t, err, errorvalues.ErrInvalidArgument)
}

func TestDeleteMeal(t *testing.T) {
	serv, repo := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	first := eventOn("pork_3", "2024-01-01")
	second := eventOn("pork_3", "2024-01-02")
	repo.EXPECT().Load(gomock.Any(), userID).Return(&entity.ProgressState{
		Events: []entity.EatingEvent{first, second},
	}, nil)
	repo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil).Times(2)

	require.NoError(t, serv.DeleteMeal(ctx, userID, first.ID))
	eaten, err := serv.EatenParts(ctx, userID)
	require.NoError(t, err)
	assert.True(t, eaten["pork_3"])

	require.NoError(t, serv.DeleteMeal(ctx, userID, second.ID))
	eaten, err = serv.EatenParts(ctx, userID)
	require.NoError(t, err)
	assert.False(t, eaten["pork_3"])

	err = serv.DeleteMeal(ctx, userID, first.ID)
	assert.ErrorIs(t, err, errorvalues.ErrNotFound)
}

func TestAwardAction(t *testing.T) {
	serv, repo := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	repo.EXPECT().Load(gomock.Any(), userID).Return(&entity.ProgressState{Experience: 90}, nil)
	repo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil).Times(2)

	out, err := serv.AwardAction(ctx, userID, tracker.ActionDailyLogin, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, out.ExperienceGained)
	assert.False(t, out.LevelUp)

	out, err = serv.AwardAction(ctx, userID, tracker.ActionStreakBonus, 3)
	require.NoError(t, err)
	assert.Equal(t, 15, out.ExperienceGained)
	assert.Equal(t, 2, out.Level)
	assert.True(t, out.LevelUp)

	_, err = serv.AwardAction(ctx, userID, tracker.ActionStreakBonus, -1)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidArgument)
}

func TestRecordsAndViews(t *testing.T) {
	serv, repo := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	rated := eventOn("beef_1", "2024-01-03")
	rated.Rating = rating(5)
	repo.EXPECT().Load(gomock.Any(), userID).Return(&entity.ProgressState{
		Events: []entity.EatingEvent{
			eventOn("beef_4", "2023-12-30"),
			rated,
			eventOn("beef_4", "2024-01-08"),
			eventOn("pork_1", "2024-01-09"),
			eventOn("chicken_1", "2024-01-10"),
		},
		Experience: 240,
	}, nil)

	records, err := serv.Records(ctx, userID, service.RecordsFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 5)

	records, err = serv.Records(ctx, userID, service.RecordsFilter{PartID: "beef_4"})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = serv.Records(ctx, userID, service.RecordsFilter{Today: true})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "chicken_1", records[0].PartID)

	records, err = serv.Records(ctx, userID, service.RecordsFilter{ThisMonth: true, PartID: "beef_4"})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = serv.Records(ctx, userID, service.RecordsFilter{From: "2024-01-08"})
	require.NoError(t, err)
	assert.Len(t, records, 3)

	records, err = serv.Records(ctx, userID, service.RecordsFilter{Today: true, ThisMonth: true, From: "2024-01-01"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "chicken_1", records[0].PartID)

	records, err = serv.Records(ctx, userID, service.RecordsFilter{Today: true, To: "2024-01-09"})
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = serv.Records(ctx, userID, service.RecordsFilter{ThisMonth: true, From: "2023-12-01", To: "2024-01-08"})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = serv.Records(ctx, userID, service.RecordsFilter{From: "2024-01-09", To: "2024-01-01"})
	assert.ErrorIs(t, err, errorvalues.ErrInvalidArgument)

	_, err = serv.Records(ctx, userID, service.RecordsFilter{From: "08.01.2024"})
	assert.ErrorIs(t, err, errorvalues.ErrInvalidArgument)

	p, err := serv.Progression(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 3, p.StreakDays)

	stats, err := serv.MonthlyStats(ctx, userID, 2024, time.January)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.RecordCount)
	assert.InDelta(t, 5.0, stats.AverageRating, 1e-9)

	beef, err := serv.AnimalStats(ctx, userID, entity.AnimalBeef)
	require.NoError(t, err)
	assert.Equal(t, 2, beef.Eaten)

	overall, err := serv.OverallStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 4, overall.Eaten)

	part, ok, err := serv.Recommend(ctx, userID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "beef_2", part.ID)

	badges, err := serv.Badges(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, badges, len(tracker.Badges()))
	for _, b := range badges {
		assert.False(t, b.Earned)
	}

	record, err := serv.Record(ctx, userID, rated.ID)
	require.NoError(t, err)
	assert.Equal(t, "beef_1", record.PartID)
	_, err = serv.Record(ctx, userID, uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrEventNotFound)
}

func TestExportImport(t *testing.T) {
	serv, repo := newTestService(t)
	ctx := context.Background()
	source := uuid.New()
	target := uuid.New()
	repo.EXPECT().Load(gomock.Any(), source).Return(&entity.ProgressState{
		Events:     []entity.EatingEvent{eventOn("beef_1", "2024-01-03"), eventOn("pork_2", "2024-01-04")},
		Experience: 130,
		Badges:     []entity.BadgeID{tracker.BadgeFirstStep, tracker.BadgeAdventurer},
	}, nil)
	repo.EXPECT().Load(gomock.Any(), target).Return(nil, errorvalues.ErrStateNotFound)
	repo.EXPECT().Save(gomock.Any(), target, gomock.Any()).Return(nil)

	snapshot, err := serv.Export(ctx, source)
	require.NoError(t, err)
	assert.Equal(t, tracker.SnapshotVersion, snapshot.Version)
	assert.Equal(t, 2, snapshot.UserLevel)

	data := []byte(`{"version":"1.0","records":[` +
		`{"id":"6f1c1b8e-7d55-4a39-9f0b-2d0b1f6d0a11","partId":"beef_1","date":"2024-01-03","createdAt":"2024-01-03T10:00:00Z"},` +
		`{"id":"7a2d2c9f-8e66-4b4a-8a1c-3e1c2a7e1b22","partId":"pork_2","date":"2024-01-04","rating":4,"createdAt":"2024-01-04T10:00:00Z"}` +
		`],"eatenParts":["beef_1","pork_2"],"userLevel":2,"userExperience":130,"userBadges":["first_step","adventurer"],"exportDate":"2024-01-10T12:00:00Z"}`)
	require.NoError(t, serv.Import(ctx, target, data))

	imported, err := serv.Export(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, snapshot.EatenParts, imported.EatenParts)
	assert.Equal(t, snapshot.UserExperience, imported.UserExperience)
	assert.Equal(t, snapshot.UserLevel, imported.UserLevel)
	assert.Equal(t, snapshot.UserBadges, imported.UserBadges)
	require.Len(t, *imported.Records, 2)
}

func TestImportRejected(t *testing.T) {
	serv, repo := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	original := eventOn("chicken_2", "2024-01-02")
	repo.EXPECT().Load(gomock.Any(), userID).Return(&entity.ProgressState{
		Events:     []entity.EatingEvent{original},
		Experience: 10,
	}, nil)

	testCases := []struct {
		Desc string
		Data string
	}{
		{Desc: "not json", Data: `{"version":`},
		{Desc: "missing version", Data: `{"records":[]}`},
		{Desc: "missing records", Data: `{"version":"1.0"}`},
		{Desc: "unknown part", Data: `{"version":"1.0","records":[{"partId":"horse_1","date":"2024-01-01"}]}`},
		{Desc: "bad date", Data: `{"version":"1.0","records":[{"partId":"beef_1","date":"01/01/2024"}]}`},
		{Desc: "bad rating", Data: `{"version":"1.0","records":[{"partId":"beef_1","date":"2024-01-01","rating":9}]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			err := serv.Import(ctx, userID, []byte(tc.Data))
			assert.ErrorIs(t, err, errorvalues.ErrInvalidFormat)
		})
	}

	records, err := serv.Records(ctx, userID, service.RecordsFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, original.ID, records[0].ID)
	p, err := serv.Progression(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Experience)
}

func TestReset(t *testing.T) {
	serv, repo := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	repo.EXPECT().Load(gomock.Any(), userID).Return(&entity.ProgressState{
		Events:     []entity.EatingEvent{eventOn("beef_1", "2024-01-02")},
		Experience: 300,
		Badges:     []entity.BadgeID{tracker.BadgeFirstStep},
	}, nil)
	repo.EXPECT().Save(gomock.Any(), userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, state *entity.ProgressState) error {
			assert.Empty(t, state.Events)
			assert.Empty(t, state.Badges)
			assert.Equal(t, 0, state.Experience)
			assert.Equal(t, 1, state.Level)
			return nil
		})
	require.NoError(t, serv.Reset(ctx, userID))
}

func TestChat(t *testing.T) {
	ctx := context.Background()
	t.Run("no concierge", func(t *testing.T) {
		serv, _ := newTestService(t)
		_, err := serv.Chat(ctx, uuid.New(), &service.ChatRequest{Message: "hi"})
		assert.ErrorIs(t, err, errorvalues.ErrConciergeUnavailable)
	})

	ctrl := gomock.NewController(t)
	concierge := servicemocks.NewMockConciergeI(ctrl)
	serv, repo := newTestService(t, service.WithConcierge(concierge), service.WithSystemPrompt("You are a meat guide."))
	userID := uuid.New()
	repo.EXPECT().Load(gomock.Any(), userID).Return(&entity.ProgressState{Experience: 150}, nil)
	history := []entity.ChatMessage{
		{Role: entity.RoleUser, Content: "hello"},
		{Role: entity.RoleAssistant, Content: "hi there"},
	}

	t.Run("history fallback", func(t *testing.T) {
		concierge.EXPECT().Reply(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entity.ChatRequest) (*entity.ChatReply, error) {
				assert.Equal(t, userID, req.UserID)
				assert.Equal(t, "what next?", req.Message)
				assert.Len(t, req.History, 2)
				assert.True(t, strings.HasPrefix(req.SystemPrompt, "You are a meat guide."))
				assert.Contains(t, req.SystemPrompt, "level 2")
				return &entity.ChatReply{Reply: "try the tongue"}, nil
			})
		reply, err := serv.Chat(ctx, userID, &service.ChatRequest{Message: "what next?", History: history})
		require.NoError(t, err)
		assert.Equal(t, "try the tongue", reply.Reply)
		require.Len(t, reply.History, 4)
		assert.Equal(t, entity.ChatMessage{Role: entity.RoleUser, Content: "what next?"}, reply.History[2])
		assert.Equal(t, entity.ChatMessage{Role: entity.RoleAssistant, Content: "try the tongue"}, reply.History[3])
		assert.Len(t, history, 2)
	})
	t.Run("history from concierge", func(t *testing.T) {
		returned := []entity.ChatMessage{{Role: entity.RoleAssistant, Content: "summary"}}
		concierge.EXPECT().Reply(gomock.Any(), gomock.Any()).Return(&entity.ChatReply{Reply: "ok", History: returned}, nil)
		reply, err := serv.Chat(ctx, userID, &service.ChatRequest{Message: "thanks"})
		require.NoError(t, err)
		assert.Equal(t, returned, reply.History)
	})
	t.Run("empty message", func(t *testing.T) {
		_, err := serv.Chat(ctx, userID, &service.ChatRequest{Message: ""})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidArgument)
	})
	t.Run("concierge error", func(t *testing.T) {
		concierge.EXPECT().Reply(gomock.Any(), gomock.Any()).Return(nil, errors.New("overloaded"))
		_, err := serv.Chat(ctx, userID, &service.ChatRequest{Message: "hello?"})
		assert.Error(t, err)
	})
}
