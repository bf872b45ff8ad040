package tracker

import (
	"fmt"

	errorvalues "github.com/limbo/tabebui/internal/error_values"
)

const experiencePerLevel = 100

type ExperienceAction string

const (
	ActionNewPart        ExperienceAction = "new_part"
	ActionRepeatPart     ExperienceAction = "repeat_part"
	ActionDailyLogin     ExperienceAction = "daily_login"
	ActionStreakBonus    ExperienceAction = "streak_bonus"
	ActionRarePart       ExperienceAction = "rare_part"
	ActionLegendaryPart  ExperienceAction = "legendary_part"
	ActionCompleteAnimal ExperienceAction = "complete_animal"
	ActionCompleteAll    ExperienceAction = "complete_all"
)

// ExperienceFor is the award table. days is only used by the streak bonus.
// Unknown actions are worth a single point.
func ExperienceFor(action ExperienceAction, days int) int {
	switch action {
	case ActionNewPart:
		return 10
	case ActionRepeatPart:
		return 5
	case ActionDailyLogin:
		return 2
	case ActionStreakBonus:
		return max(0, days) * 5
	case ActionRarePart:
		return 15
	case ActionLegendaryPart:
		return 25
	case ActionCompleteAnimal:
		return 50
	case ActionCompleteAll:
		return 100
	default:
		return 1
	}
}

func levelFor(experience int) int {
	return experience/experiencePerLevel + 1
}

// AwardExperience adds points and returns the level afterwards. A returned
// level above the previous Level() is a level-up.
func (t *Tracker) AwardExperience(points int) (int, error) {
	if points < 0 {
		return t.level, fmt.Errorf("%w: negative experience %d", errorvalues.ErrInvalidArgument, points)
	}
	t.experience += points
	if lvl := levelFor(t.experience); lvl > t.level {
		t.level = lvl
	}
	return t.level, nil
}

func (t *Tracker) Experience() int {
	return t.experience
}

func (t *Tracker) Level() int {
	return t.level
}

func (t *Tracker) ExperienceToNextLevel() int {
	return max(0, t.level*experiencePerLevel-t.experience)
}

func (t *Tracker) CurrentLevelProgress() int {
	return min(experiencePerLevel, t.experience-(t.level-1)*experiencePerLevel)
}
