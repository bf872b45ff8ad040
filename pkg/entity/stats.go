package entity

type AnimalStats struct {
	Total          int `json:"total"`
	Eaten          int `json:"eaten"`
	Remaining      int `json:"remaining"`
	CompletionRate int `json:"completion_rate"`
}

type OverallStats struct {
	Total          int                        `json:"total"`
	Eaten          int                        `json:"eaten"`
	Remaining      int                        `json:"remaining"`
	CompletionRate int                        `json:"completion_rate"`
	Animals        map[AnimalType]AnimalStats `json:"animals"`
}

type PartRating struct {
	PartID        string  `json:"part_id"`
	AverageRating float64 `json:"average_rating"`
	RecordCount   int     `json:"record_count"`
}

type PeriodStats struct {
	From            string       `json:"from"`
	To              string       `json:"to"`
	RecordCount     int          `json:"record_count"`
	UniquePartCount int          `json:"unique_part_count"`
	AverageRating   float64      `json:"average_rating"`
	TopRated        []PartRating `json:"top_rated"`
}

type Progression struct {
	Level                 int       `json:"level"`
	Experience            int       `json:"experience"`
	ExperienceToNextLevel int       `json:"experience_to_next_level"`
	CurrentLevelProgress  int       `json:"current_level_progress"`
	StreakDays            int       `json:"streak_days"`
	Badges                []BadgeID `json:"badges"`
}
