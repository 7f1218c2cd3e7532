package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Achievement is one entry in the YAML-defined achievement catalog.
type Achievement struct {
	ID            string `yaml:"id" json:"id"`
	Name          string `yaml:"name" json:"name"`
	Description   string `yaml:"description" json:"description"`
	Points        int    `yaml:"points" json:"points"`
	CriteriaType  string `yaml:"criteria_type" json:"criteria_type"` // cards_studied, streak_days, sessions_completed
	CriteriaValue int    `yaml:"criteria_value" json:"criteria_value"`
}

// AchievementCatalog holds all achievements loaded at startup.
type AchievementCatalog struct {
	Achievements []Achievement `yaml:"achievements"`
}

// AchievementStatus pairs a catalog entry with the user's standing.
// Earned status is recomputed from study history on every request.
type AchievementStatus struct {
	Achievement
	Earned   bool       `json:"earned"`
	Progress int        `json:"progress"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}

// LoadAchievements reads and parses the achievements catalog file.
func LoadAchievements(path string) (*AchievementCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read achievements file: %w", err)
	}

	var catalog AchievementCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal achievements YAML: %w", err)
	}

	return &catalog, nil
}
