package entity

type BadgeID string

type Badge struct {
	ID          BadgeID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

// ProgressState is the whole persisted state of one user. It is read and
// written as a single blob.
type ProgressState struct {
	Events     []EatingEvent `json:"events"`
	Completed  []string      `json:"completed"`
	Experience int           `json:"experience"`
	Level      int           `json:"level"`
	Badges     []BadgeID     `json:"badges"`
}

// Snapshot is the versioned export format. Pointer fields let an import
// tell a missing field apart from an empty one.
type Snapshot struct {
	Version        string         `json:"version"`
	Records        *[]EatingEvent `json:"records"`
	EatenParts     []string       `json:"eatenParts"`
	UserLevel      int            `json:"userLevel"`
	UserExperience int            `json:"userExperience"`
	UserBadges     []BadgeID      `json:"userBadges"`
	ExportDate     string         `json:"exportDate"`
}
