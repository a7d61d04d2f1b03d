package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rohits-web03/portfolio-server/internal/models"
	"github.com/rohits-web03/portfolio-server/internal/utils"
)

type educationResponse struct {
	ID          string   `json:"id"`
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date"`
	EndDate     any      `json:"end_date"`
	Current     bool     `json:"current"`
	GPA         *float64 `json:"gpa"`
	Order       int      `json:"order"`
	IsActive    bool     `json:"is_active"`
}

func toEducationResponse(e models.Education) educationResponse {
	return educationResponse{
		ID:          e.ID.String(),
		Degree:      e.Degree,
		Institution: e.Institution,
		Description: e.Description,
		StartDate:   e.StartDate.Format(dateLayout),
		EndDate:     fmtDate(e.EndDate),
		Current:     e.Current,
		GPA:         e.GPA,
		Order:       e.Order,
		IsActive:    e.IsActive,
	}
}

// GET /api/education
func (h *Handler) ListEducation(w http.ResponseWriter, r *http.Request) {
	var entries []models.Education
	if err := h.DB.Order(byDisplayOrder).Find(&entries).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	out := make([]educationResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEducationResponse(e))
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Education retrieved successfully",
		Data:    out,
	})
}

type educationInput struct {
	Degree      *string  `json:"degree"`
	Institution *string  `json:"institution"`
	Description *string  `json:"description"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Current     *bool    `json:"current"`
	GPA         *float64 `json:"gpa"`
	Order       *int     `json:"order"`
	IsActive    *bool    `json:"is_active"`
}

// POST /api/education
func (h *Handler) CreateEducation(w http.ResponseWriter, r *http.Request) {
	var input educationInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Degree == nil || input.Institution == nil || input.StartDate == nil {
		utils.Error(w, http.StatusBadRequest, "Degree, institution and start_date required")
		return
	}

	start, err := parseDate(*input.StartDate)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
		return
	}

	edu := models.Education{
		Degree:      *input.Degree,
		Institution: *input.Institution,
		StartDate:   start,
		IsActive:    true,
	}
	if input.Description != nil {
		edu.Description = *input.Description
	}
	if input.EndDate != nil && *input.EndDate != "" {
		end, err := parseDate(*input.EndDate)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		edu.EndDate = &end
	}
	if input.Current != nil {
		edu.Current = *input.Current
	}
	if input.GPA != nil {
		edu.GPA = input.GPA
	}
	if input.Order != nil {
		edu.Order = *input.Order
	}
	if input.IsActive != nil {
		edu.IsActive = *input.IsActive
	}

	if err := h.DB.Create(&edu).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database insert failed")
		return
	}
	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Education created",
		Data:    map[string]string{"id": edu.ID.String()},
	})
}

// PUT /api/education/{id}
func (h *Handler) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	var edu models.Education
	if err := h.findByPathID(r, &edu); err != nil {
		notFoundOr500(w, err, "Education")
		return
	}

	var input educationInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Degree != nil {
		edu.Degree = *input.Degree
	}
	if input.Institution != nil {
		edu.Institution = *input.Institution
	}
	if input.Description != nil {
		edu.Description = *input.Description
	}
	if input.StartDate != nil {
		start, err := parseDate(*input.StartDate)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		edu.StartDate = start
	}
	if input.EndDate != nil {
		if *input.EndDate == "" {
			edu.EndDate = nil
		} else {
			end, err := parseDate(*input.EndDate)
			if err != nil {
				utils.Error(w, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
				return
			}
			edu.EndDate = &end
		}
	}
	if input.Current != nil {
		edu.Current = *input.Current
	}
	if input.GPA != nil {
		edu.GPA = input.GPA
	}
	if input.Order != nil {
		edu.Order = *input.Order
	}
	if input.IsActive != nil {
		edu.IsActive = *input.IsActive
	}

	if err := h.DB.Save(&edu).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database update failed")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Education updated",
	})
}

// DELETE /api/education/{id}
func (h *Handler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	var edu models.Education
	if err := h.findByPathID(r, &edu); err != nil {
		notFoundOr500(w, err, "Education")
		return
	}
	if err := h.DB.Delete(&edu).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database delete failed")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Education deleted",
	})
}
