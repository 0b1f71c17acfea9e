package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// Skills collects the skills users list on their profiles.
type Skills struct {
	source model.SkillSource
	logger *logger.Logger
}

func NewSkills(source model.SkillSource, logger *logger.Logger) *Skills {
	return &Skills{
		source: source,
		logger: logger,
	}
}

// List returns every distinct skill in first-seen order. Profiles store
// skills as a JSON array of strings; other values are skipped.
func (s *Skills) List(ctx context.Context) ([]string, error) {
	values, err := s.source.SkillValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	skills := []string{}
	seen := make(map[string]struct{})
	skipped := 0
	for _, raw := range values {
		var parsed []any
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			skipped++
			continue
		}
		for _, v := range parsed {
			skill, ok := v.(string)
			if !ok {
				continue
			}
			if _, dup := seen[skill]; dup {
				continue
			}
			seen[skill] = struct{}{}
			skills = append(skills, skill)
		}
	}

	if skipped > 0 {
		s.logger.Debug("Skills service: skipped unparsable skill values",
			"count", skipped)
	}

	return skills, nil
}
