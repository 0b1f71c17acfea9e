package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/jobmarket-server/internal/api/http/response"
)

// SkillService lists the skills users advertise.
type SkillService interface {
	List(ctx context.Context) ([]string, error)
}

// Skills handles GET /api/skill.
type Skills struct {
	skills SkillService
}

func NewSkills(skills SkillService) *Skills {
	return &Skills{skills: skills}
}

func (h *Skills) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skills.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get skills successfully", skills)
}
