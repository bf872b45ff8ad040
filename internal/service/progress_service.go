package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/tabebui/internal/catalog"
	errorvalues "github.com/limbo/tabebui/internal/error_values"
	"github.com/limbo/tabebui/internal/repository"
	"github.com/limbo/tabebui/internal/tracker"
	"github.com/limbo/tabebui/pkg/entity"
)

// ProgressService owns one tracker per user. Every call runs under a single
// lock and mutating calls flush the whole state before returning.
type ProgressService struct {
	repo         repository.StateRepositoryI
	concierge    ConciergeI
	catalog      *catalog.Catalog
	trackerOpts  []tracker.Option
	systemPrompt string
	logger       *slog.Logger

	mu       sync.Mutex
	trackers map[uuid.UUID]*tracker.Tracker
}

type Option func(*ProgressService)

func WithConcierge(c ConciergeI) Option {
	return func(ps *ProgressService) {
		ps.concierge = c
	}
}

func WithCatalog(c *catalog.Catalog) Option {
	return func(ps *ProgressService) {
		if c != nil {
			ps.catalog = c
		}
	}
}

func WithTrackerOptions(opts ...tracker.Option) Option {
	return func(ps *ProgressService) {
		ps.trackerOpts = append(ps.trackerOpts, opts...)
	}
}

func WithSystemPrompt(prompt string) Option {
	return func(ps *ProgressService) {
		ps.systemPrompt = prompt
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(ps *ProgressService) {
		if l != nil {
			ps.logger = l
		}
	}
}

func NewProgressService(repo repository.StateRepositoryI, opts ...Option) *ProgressService {
	if repo == nil {
		log.Fatal("provided nil progress repository")
	}
	InitValidator()
	ps := &ProgressService{
		repo:     repo,
		catalog:  catalog.Default(),
		logger:   slog.Default(),
		trackers: make(map[uuid.UUID]*tracker.Tracker),
	}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

func (ps *ProgressService) Catalog() *catalog.Catalog {
	return ps.catalog
}

// trackerFor returns the cached tracker or restores it from the repository.
// Caller holds ps.mu.
func (ps *ProgressService) trackerFor(ctx context.Context, userID uuid.UUID) (*tracker.Tracker, error) {
	if tr, ok := ps.trackers[userID]; ok {
		return tr, nil
	}
	state, err := ps.repo.Load(ctx, userID)
	if err != nil && !errors.Is(err, errorvalues.ErrStateNotFound) {
		ps.logger.Error("loading progress state failed", slog.String("user_id", userID.String()), slog.Any("error", err))
		return nil, storageError(err)
	}
	tr := tracker.FromState(ps.catalog, state, ps.trackerOpts...)
	ps.trackers[userID] = tr
	return tr, nil
}

// view runs a read-only function against the user's tracker.
func (ps *ProgressService) view(ctx context.Context, userID uuid.UUID, fn func(*tracker.Tracker) error) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	tr, err := ps.trackerFor(ctx, userID)
	if err != nil {
		return err
	}
	return fn(tr)
}

// mutate runs fn and saves the state when fn succeeded. On a failed save the
// in-memory state is kept and the error wraps ErrStorage.
func (ps *ProgressService) mutate(ctx context.Context, userID uuid.UUID, fn func(*tracker.Tracker) error) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	tr, err := ps.trackerFor(ctx, userID)
	if err != nil {
		return err
	}
	if err = fn(tr); err != nil {
		return err
	}
	if err = ps.repo.Save(ctx, userID, tr.State()); err != nil {
		ps.logger.Error("saving progress state failed", slog.String("user_id", userID.String()), slog.Any("error", err))
		return storageError(err)
	}
	return nil
}

func storageError(err error) error {
	if errors.Is(err, errorvalues.ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: repository error: %s", errorvalues.ErrStorage, err.Error())
}

func badgesOf(ids []entity.BadgeID) []entity.Badge {
	out := make([]entity.Badge, 0, len(ids))
	for _, id := range ids {
		if b, ok := tracker.BadgeByID(id); ok {
			out = append(out, b)
		}
	}
	return out
}

// recordAward applies the experience policy to a freshly recorded event.
func recordAward(tr *tracker.Tracker, res tracker.RecordResult) int {
	if !res.IsNewPart {
		return tracker.ExperienceFor(tracker.ActionRepeatPart, 0)
	}
	points := tracker.ExperienceFor(tracker.ActionNewPart, 0)
	part, ok := tr.Catalog().Part(res.Event.PartID)
	if !ok {
		return points
	}
	switch part.Rarity {
	case entity.RarityRare:
		points += tracker.ExperienceFor(tracker.ActionRarePart, 0)
	case entity.RarityLegendary:
		points += tracker.ExperienceFor(tracker.ActionLegendaryPart, 0)
	}
	if rate, err := tr.CompletionRate(part.Animal); err == nil && rate == 100 {
		points += tracker.ExperienceFor(tracker.ActionCompleteAnimal, 0)
	}
	if tr.OverallCompletionRate() == 100 {
		points += tracker.ExperienceFor(tracker.ActionCompleteAll, 0)
	}
	return points
}

// RecordMeal logs one eaten part, awards experience and evaluates badges.
// When only the save fails the outcome is returned along with the error.
func (ps *ProgressService) RecordMeal(ctx context.Context, userID uuid.UUID, req *RecordMealRequest) (*RecordOutcome, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", errorvalues.ErrInvalidArgument)
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var outcome *RecordOutcome
	err := ps.mutate(ctx, userID, func(tr *tracker.Tracker) error {
		date := req.Date
		if date == "" {
			date = tr.Today()
		}
		prevLevel := tr.Level()
		res, err := tr.RecordEvent(tracker.RecordInput{
			PartID:     req.PartID,
			Date:       date,
			Memo:       req.Memo,
			Rating:     req.Rating,
			Restaurant: req.Restaurant,
		})
		if err != nil {
			return err
		}
		gained := recordAward(tr, res)
		level, err := tr.AwardExperience(gained)
		if err != nil {
			return err
		}
		outcome = &RecordOutcome{
			Event:            res.Event,
			IsNewPart:        res.IsNewPart,
			ExperienceGained: gained,
			Level:            level,
			LevelUp:          level > prevLevel,
			NewBadges:        badgesOf(tr.EvaluateBadges()),
		}
		ps.logger.Info("meal recorded",
			slog.String("user_id", userID.String()),
			slog.String("part_id", res.Event.PartID),
			slog.Bool("new_part", res.IsNewPart),
			slog.Int("experience", gained),
			slog.Int("level", level),
		)
		return nil
	})
	if outcome != nil && err != nil && errors.Is(err, errorvalues.ErrStorage) {
		return outcome, err
	}
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func (ps *ProgressService) UpdateMeal(ctx context.Context, userID, eventID uuid.UUID, req *UpdateMealRequest) (*UpdateOutcome, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", errorvalues.ErrInvalidArgument)
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var outcome *UpdateOutcome
	err := ps.mutate(ctx, userID, func(tr *tracker.Tracker) error {
		event, err := tr.UpdateEvent(eventID, tracker.EventUpdate{
			PartID:      req.PartID,
			Date:        req.Date,
			Memo:        req.Memo,
			Rating:      req.Rating,
			ClearRating: req.ClearRating,
			Restaurant:  req.Restaurant,
		})
		if err != nil {
			return err
		}
		outcome = &UpdateOutcome{
			Event:     event,
			NewBadges: badgesOf(tr.EvaluateBadges()),
		}
		ps.logger.Info("meal updated", slog.String("user_id", userID.String()), slog.String("event_id", eventID.String()))
		return nil
	})
	if outcome != nil && err != nil && errors.Is(err, errorvalues.ErrStorage) {
		return outcome, err
	}
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func (ps *ProgressService) DeleteMeal(ctx context.Context, userID, eventID uuid.UUID) error {
	return ps.mutate(ctx, userID, func(tr *tracker.Tracker) error {
		if !tr.DeleteEvent(eventID) {
			return fmt.Errorf("%w: %s", errorvalues.ErrEventNotFound, eventID)
		}
		ps.logger.Info("meal deleted", slog.String("user_id", userID.String()), slog.String("event_id", eventID.String()))
		return nil
	})
}

// AwardAction grants experience for an action outside meal recording, such
// as a daily login or a streak bonus.
func (ps *ProgressService) AwardAction(ctx context.Context, userID uuid.UUID, action tracker.ExperienceAction, days int) (*ExperienceOutcome, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: negative days %d", errorvalues.ErrInvalidArgument, days)
	}
	var outcome *ExperienceOutcome
	err := ps.mutate(ctx, userID, func(tr *tracker.Tracker) error {
		prevLevel := tr.Level()
		gained := tracker.ExperienceFor(action, days)
		level, err := tr.AwardExperience(gained)
		if err != nil {
			return err
		}
		outcome = &ExperienceOutcome{
			Action:           string(action),
			ExperienceGained: gained,
			Level:            level,
			LevelUp:          level > prevLevel,
			NewBadges:        badgesOf(tr.EvaluateBadges()),
		}
		ps.logger.Info("experience awarded",
			slog.String("user_id", userID.String()),
			slog.String("action", string(action)),
			slog.Int("experience", gained),
		)
		return nil
	})
	if outcome != nil && err != nil && errors.Is(err, errorvalues.ErrStorage) {
		return outcome, err
	}
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func (ps *ProgressService) Records(ctx context.Context, userID uuid.UUID, filter RecordsFilter) ([]entity.EatingEvent, error) {
	if err := validateRequest(&filter); err != nil {
		return nil, err
	}
	if filter.From != "" && filter.To != "" && filter.From > filter.To {
		return nil, fmt.Errorf("%w: range start %s is after end %s", errorvalues.ErrInvalidArgument, filter.From, filter.To)
	}
	var events []entity.EatingEvent
	err := ps.view(ctx, userID, func(tr *tracker.Tracker) error {
		from, to := recordsWindow(tr.Today(), filter)
		if from > to {
			events = []entity.EatingEvent{}
			return nil
		}
		var err error
		events, err = tr.EventsInRange(from, to)
		if err != nil {
			return err
		}
		if filter.PartID != "" {
			kept := events[:0]
			for _, e := range events {
				if e.PartID == filter.PartID {
					kept = append(kept, e)
				}
			}
			events = kept
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// recordsWindow intersects the date filters into one inclusive range. An
// empty range comes back with from after to.
func recordsWindow(today string, filter RecordsFilter) (from, to string) {
	from, to = "0001-01-01", "9999-12-31"
	narrow := func(lo, hi string) {
		from, to = max(from, lo), min(to, hi)
	}
	if filter.From != "" {
		narrow(filter.From, to)
	}
	if filter.To != "" {
		narrow(from, filter.To)
	}
	if filter.Today {
		narrow(today, today)
	}
	if filter.ThisMonth {
		d, _ := time.Parse(entity.DateLayout, today)
		first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		narrow(first.Format(entity.DateLayout), first.AddDate(0, 1, -1).Format(entity.DateLayout))
	}
	return from, to
}

func (ps *ProgressService) Record(ctx context.Context, userID, eventID uuid.UUID) (entity.EatingEvent, error) {
	var event entity.EatingEvent
	err := ps.view(ctx, userID, func(tr *tracker.Tracker) error {
		var err error
		event, err = tr.Event(eventID)
		return err
	})
	return event, err
}

func (ps *ProgressService) OverallStats(ctx context.Context, userID uuid.UUID) (entity.OverallStats, error) {
	var stats entity.OverallStats
	err := ps.view(ctx, userID, func(tr *tracker.Tracker) error {
		stats = tr.OverallStats()
		return nil
	})
	return stats, err
}

func (ps *ProgressService) AnimalStats(ctx context.Context, userID uuid.UUID, animal entity.AnimalType) (entity.AnimalStats, error) {
	var stats entity.AnimalStats
	err := ps.view(ctx, userID, func(tr *tracker.Tracker) error {
		var err error
		stats, err = tr.AnimalStats(animal)
		return err
	})
	return stats, err
}

func (ps *ProgressService) MonthlyStats(ctx context.Context, userID uuid.UUID, year int, month time.Month) (entity.PeriodStats, error) {
	var stats entity.PeriodStats
	err := ps.view(ctx, userID, func(tr *tracker.Tracker) error {
		var err error
		stats, err = tr.MonthlyStats(year, month)
		return err
	})
	return stats, err
}

func (ps *ProgressService) Progression(ctx context.Context, userID uuid.UUID) (entity.Progression, error) {
	var p entity.Progression
	err := ps.view(ctx, userID, func(tr *tracker.Tracker) error {
		p = tr.Progression()
		return nil
	})
	return p, err
}

// Badges lists the whole registry, earned badges flagged.
func (ps *ProgressService) Badges(ctx context.Context, userID uuid.UUID) ([]BadgeView, error) {
	var views []BadgeView
	err := ps.view(ctx, userID, func(tr *tracker.Tracker) error {
		for _, b := range tracker.Badges() {
			views = append(views, BadgeView{Badge: b, Earned: tr.HasBadge(b.ID)})
		}
		return nil
	})
	return views, err
}

// Recommend returns the rarest part the user has not eaten yet. ok is false
// once everything is eaten.
func (ps *ProgressService) Recommend(ctx context.Context, userID uuid.UUID) (part entity.Part, ok bool, err error) {
	err = ps.view(ctx, userID, func(tr *tracker.Tracker) error {
		part, ok = tr.RecommendedPart()
		return nil
	})
	return part, ok, err
}

// EatenParts reports per catalog part whether the user has eaten it.
func (ps *ProgressService) EatenParts(ctx context.Context, userID uuid.UUID) (map[string]bool, error) {
	eaten := make(map[string]bool)
	err := ps.view(ctx, userID, func(tr *tracker.Tracker) error {
		for _, p := range tr.Catalog().AllParts() {
			eaten[p.ID] = tr.IsEaten(p.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return eaten, nil
}

func (ps *ProgressService) Export(ctx context.Context, userID uuid.UUID) (entity.Snapshot, error) {
	var snapshot entity.Snapshot
	err := ps.view(ctx, userID, func(tr *tracker.Tracker) error {
		snapshot = tr.Export()
		return nil
	})
	return snapshot, err
}

// Import replaces the user's state with an exported file. A rejected file
// leaves the state untouched.
func (ps *ProgressService) Import(ctx context.Context, userID uuid.UUID, data []byte) error {
	snapshot, err := tracker.ParseSnapshot(data)
	if err != nil {
		return err
	}
	return ps.mutate(ctx, userID, func(tr *tracker.Tracker) error {
		if err := tr.Import(snapshot); err != nil {
			return err
		}
		ps.logger.Info("progress imported",
			slog.String("user_id", userID.String()),
			slog.Int("records", len(*snapshot.Records)),
		)
		return nil
	})
}

func (ps *ProgressService) Reset(ctx context.Context, userID uuid.UUID) error {
	return ps.mutate(ctx, userID, func(tr *tracker.Tracker) error {
		tr.Reset()
		ps.logger.Info("progress reset", slog.String("user_id", userID.String()))
		return nil
	})
}

// Chat forwards one message to the concierge with the user's progress
// appended to the system prompt.
func (ps *ProgressService) Chat(ctx context.Context, userID uuid.UUID, req *ChatRequest) (*entity.ChatReply, error) {
	if ps.concierge == nil {
		return nil, errorvalues.ErrConciergeUnavailable
	}
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", errorvalues.ErrInvalidArgument)
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var progression entity.Progression
	var overall int
	err := ps.view(ctx, userID, func(tr *tracker.Tracker) error {
		progression = tr.Progression()
		overall = tr.OverallCompletionRate()
		return nil
	})
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf("User progress: level %d, %d%% of all parts eaten, %d day streak.",
		progression.Level, overall, progression.StreakDays)
	if ps.systemPrompt != "" {
		prompt = ps.systemPrompt + "\n\n" + prompt
	}
	history := make([]entity.ChatMessage, len(req.History))
	copy(history, req.History)
	reply, err := ps.concierge.Reply(ctx, entity.ChatRequest{
		UserID:       userID,
		Message:      req.Message,
		History:      history,
		SystemPrompt: prompt,
	})
	if err != nil {
		ps.logger.Error("concierge reply failed", slog.String("user_id", userID.String()), slog.Any("error", err))
		return nil, errors.New("concierge error: " + err.Error())
	}
	if reply == nil {
		return nil, errors.New("concierge error: empty reply")
	}
	if len(reply.History) == 0 {
		reply.History = append(history,
			entity.ChatMessage{Role: entity.RoleUser, Content: req.Message},
			entity.ChatMessage{Role: entity.RoleAssistant, Content: reply.Reply},
		)
	}
	return reply, nil
}
