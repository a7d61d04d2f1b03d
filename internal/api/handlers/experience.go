package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rohits-web03/portfolio-server/internal/models"
	"github.com/rohits-web03/portfolio-server/internal/utils"
	"gorm.io/gorm"
)

type referenceResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Note  string `json:"note"`
}

type experienceResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Company     string              `json:"company"`
	Description string              `json:"description"`
	StartDate   string              `json:"start_date"`
	EndDate     any                 `json:"end_date"`
	Current     bool                `json:"current"`
	Location    string              `json:"location"`
	Order       int                 `json:"order"`
	IsActive    bool                `json:"is_active"`
	References  []referenceResponse `json:"references"`
}

func toReferenceResponse(ref models.Reference) referenceResponse {
	return referenceResponse{
		ID:    ref.ID.String(),
		Name:  ref.Name,
		Email: ref.Email,
		Phone: ref.Phone,
		Note:  ref.Note,
	}
}

func toExperienceResponse(e models.Experience) experienceResponse {
	refs := make([]referenceResponse, 0, len(e.References))
	for _, ref := range e.References {
		refs = append(refs, toReferenceResponse(ref))
	}
	return experienceResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Company:     e.Company,
		Description: e.Description,
		StartDate:   e.StartDate.Format(dateLayout),
		EndDate:     fmtDate(e.EndDate),
		Current:     e.Current,
		Location:    e.Location,
		Order:       e.Order,
		IsActive:    e.IsActive,
		References:  refs,
	}
}

// GET /api/experience
func (h *Handler) ListExperience(w http.ResponseWriter, r *http.Request) {
	var entries []models.Experience
	if err := h.DB.Preload("References").Order(byDisplayOrder).Find(&entries).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	out := make([]experienceResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toExperienceResponse(e))
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Experience retrieved successfully",
		Data:    out,
	})
}

type experienceInput struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Current     *bool   `json:"current"`
	Location    *string `json:"location"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"is_active"`
}

// POST /api/experience
func (h *Handler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var input experienceInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Title == nil || input.Company == nil || input.Description == nil || input.StartDate == nil {
		utils.Error(w, http.StatusBadRequest, "Title, company, description and start_date required")
		return
	}

	start, err := parseDate(*input.StartDate)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
		return
	}

	exp := models.Experience{
		Title:       *input.Title,
		Company:     *input.Company,
		Description: *input.Description,
		StartDate:   start,
		IsActive:    true,
	}
	if input.EndDate != nil && *input.EndDate != "" {
		end, err := parseDate(*input.EndDate)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		exp.EndDate = &end
	}
	if input.Current != nil {
		exp.Current = *input.Current
	}
	if input.Location != nil {
		exp.Location = *input.Location
	}
	if input.Order != nil {
		exp.Order = *input.Order
	}
	if input.IsActive != nil {
		exp.IsActive = *input.IsActive
	}

	if err := h.DB.Create(&exp).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database insert failed")
		return
	}
	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Experience created",
		Data:    map[string]string{"id": exp.ID.String()},
	})
}

// PUT /api/experience/{id}
func (h *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	var exp models.Experience
	if err := h.findByPathID(r, &exp); err != nil {
		notFoundOr500(w, err, "Experience")
		return
	}

	var input experienceInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Title != nil {
		exp.Title = *input.Title
	}
	if input.Company != nil {
		exp.Company = *input.Company
	}
	if input.Description != nil {
		exp.Description = *input.Description
	}
	if input.StartDate != nil {
		start, err := parseDate(*input.StartDate)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		exp.StartDate = start
	}
	if input.EndDate != nil {
		if *input.EndDate == "" {
			exp.EndDate = nil
		} else {
			end, err := parseDate(*input.EndDate)
			if err != nil {
				utils.Error(w, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
				return
			}
			exp.EndDate = &end
		}
	}
	if input.Current != nil {
		exp.Current = *input.Current
	}
	if input.Location != nil {
		exp.Location = *input.Location
	}
	if input.Order != nil {
		exp.Order = *input.Order
	}
	if input.IsActive != nil {
		exp.IsActive = *input.IsActive
	}

	if err := h.DB.Save(&exp).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database update failed")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Experience updated",
	})
}

// DELETE /api/experience/{id}
func (h *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	var exp models.Experience
	if err := h.findByPathID(r, &exp); err != nil {
		notFoundOr500(w, err, "Experience")
		return
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("experience_id = ?", exp.ID).Delete(&models.Reference{}).Error; err != nil {
			return err
		}
		return tx.Delete(&exp).Error
	})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database delete failed")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Experience deleted",
	})
}

// GET /api/experience/{id}/references
func (h *Handler) ListReferences(w http.ResponseWriter, r *http.Request) {
	var exp models.Experience
	if err := h.findByPathID(r, &exp); err != nil {
		notFoundOr500(w, err, "Experience")
		return
	}
	var refs []models.Reference
	if err := h.DB.Where("experience_id = ?", exp.ID).Find(&refs).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	out := make([]referenceResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, toReferenceResponse(ref))
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "References retrieved successfully",
		Data:    out,
	})
}

// POST /api/experience/{id}/references
func (h *Handler) CreateReference(w http.ResponseWriter, r *http.Request) {
	var exp models.Experience
	if err := h.findByPathID(r, &exp); err != nil {
		notFoundOr500(w, err, "Experience")
		return
	}

	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
		Note  string `json:"note"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Name == "" {
		utils.Error(w, http.StatusBadRequest, "Name is required")
		return
	}

	ref := models.Reference{
		ExperienceID: exp.ID,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Note:         input.Note,
	}
	if err := h.DB.Create(&ref).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database insert failed")
		return
	}
	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Reference added",
		Data:    map[string]string{"id": ref.ID.String()},
	})
}

// PUT /api/references/{id}
func (h *Handler) UpdateReference(w http.ResponseWriter, r *http.Request) {
	var ref models.Reference
	if err := h.findByPathID(r, &ref); err != nil {
		notFoundOr500(w, err, "Reference")
		return
	}

	var input struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
		Note  *string `json:"note"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Name != nil {
		ref.Name = *input.Name
	}
	if input.Email != nil {
		ref.Email = *input.Email
	}
	if input.Phone != nil {
		ref.Phone = *input.Phone
	}
	if input.Note != nil {
		ref.Note = *input.Note
	}

	if err := h.DB.Save(&ref).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database update failed")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Reference updated",
	})
}

// DELETE /api/references/{id}
func (h *Handler) DeleteReference(w http.ResponseWriter, r *http.Request) {
	var ref models.Reference
	if err := h.findByPathID(r, &ref); err != nil {
		notFoundOr500(w, err, "Reference")
		return
	}
	if err := h.DB.Delete(&ref).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database delete failed")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Reference deleted",
	})
}
