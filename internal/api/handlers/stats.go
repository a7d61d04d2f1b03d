package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/rohits-web03/portfolio-server/internal/models"
	"github.com/rohits-web03/portfolio-server/internal/utils"
)

type monthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// GET /api/stats
// Counts plus monthly creation histograms. Grouping happens in Go over the
// fetched timestamps so it behaves the same on postgres and sqlite.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int64{}
	for name, model := range map[string]any{
		"total_projects":       &models.Project{},
		"total_skills":         &models.Skill{},
		"total_education":      &models.Education{},
		"total_certifications": &models.Certification{},
		"total_contacts":       &models.Contact{},
	} {
		var n int64
		if err := h.DB.Model(model).Count(&n).Error; err != nil {
			utils.Error(w, http.StatusInternalServerError, "Database error")
			return
		}
		counts[name] = n
	}

	projectMonths, err := h.monthHistogram(&models.Project{})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	contactMonths, err := h.monthHistogram(&models.Contact{})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Stats retrieved successfully",
		Data: map[string]any{
			"total_projects":       counts["total_projects"],
			"total_skills":         counts["total_skills"],
			"total_education":      counts["total_education"],
			"total_certifications": counts["total_certifications"],
			"total_contacts":       counts["total_contacts"],
			"projects_by_month":    projectMonths,
			"contacts_by_month":    contactMonths,
		},
	})
}

func (h *Handler) monthHistogram(model any) ([]monthCount, error) {
	var stamps []time.Time
	if err := h.DB.Model(model).Pluck("created_at", &stamps).Error; err != nil {
		return nil, err
	}

	buckets := map[string]int{}
	for _, t := range stamps {
		buckets[t.UTC().Format("2006-01")]++
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]monthCount, 0, len(months))
	for _, m := range months {
		out = append(out, monthCount{Month: m, Count: buckets[m]})
	}
	return out, nil
}
