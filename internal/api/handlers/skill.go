package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rohits-web03/portfolio-server/internal/models"
	"github.com/rohits-web03/portfolio-server/internal/utils"
)

// GET /api/skills
func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	var skills []models.Skill
	if err := h.DB.Order(byDisplayOrder).Find(&skills).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Skills retrieved successfully",
		Data:    skills,
	})
}

// POST /api/skills
func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name        string `json:"name"`
		Icon        string `json:"icon"`
		Proficiency *int   `json:"proficiency"`
		Category    string `json:"category"`
		Order       int    `json:"order"`
		IsActive    *bool  `json:"is_active"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Name == "" || input.Proficiency == nil {
		utils.Error(w, http.StatusBadRequest, "Name and proficiency required")
		return
	}

	skill := models.Skill{
		Name:        input.Name,
		Icon:        input.Icon,
		Proficiency: *input.Proficiency,
		Category:    input.Category,
		Order:       input.Order,
		IsActive:    true,
	}
	if skill.Category == "" {
		skill.Category = "technical"
	}
	if input.IsActive != nil {
		skill.IsActive = *input.IsActive
	}

	if err := h.DB.Create(&skill).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database insert failed")
		return
	}
	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Skill created",
		Data:    map[string]string{"id": skill.ID.String()},
	})
}

// PUT /api/skills/{id}
// Only fields present in the body are applied.
func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	var skill models.Skill
	if err := h.findByPathID(r, &skill); err != nil {
		notFoundOr500(w, err, "Skill")
		return
	}

	var input struct {
		Name        *string `json:"name"`
		Icon        *string `json:"icon"`
		Proficiency *int    `json:"proficiency"`
		Category    *string `json:"category"`
		Order       *int    `json:"order"`
		IsActive    *bool   `json:"is_active"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Name != nil {
		skill.Name = *input.Name
	}
	if input.Icon != nil {
		skill.Icon = *input.Icon
	}
	if input.Proficiency != nil {
		skill.Proficiency = *input.Proficiency
	}
	if input.Category != nil {
		skill.Category = *input.Category
	}
	if input.Order != nil {
		skill.Order = *input.Order
	}
	if input.IsActive != nil {
		skill.IsActive = *input.IsActive
	}

	if err := h.DB.Save(&skill).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database update failed")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Skill updated",
	})
}

// DELETE /api/skills/{id}
func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	var skill models.Skill
	if err := h.findByPathID(r, &skill); err != nil {
		notFoundOr500(w, err, "Skill")
		return
	}
	if err := h.DB.Delete(&skill).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database delete failed")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Skill deleted",
	})
}
