package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rohits-web03/portfolio-server/internal/models"
	"github.com/rohits-web03/portfolio-server/internal/utils"
)

// GET /api/contacts
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	var contacts []models.Contact
	if err := h.DB.Order("created_at DESC").Find(&contacts).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Contacts retrieved successfully",
		Data:    contacts,
	})
}

// POST /api/contacts
// The one open mutation: visitors leave messages without auth.
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Name == "" || input.Email == "" || input.Message == "" {
		utils.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}

	contact := models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := h.DB.Create(&contact).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database insert failed")
		return
	}
	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Contact message received",
		Data:    map[string]string{"id": contact.ID.String()},
	})
}

// PUT /api/contacts/{id}
// The only mutation a contact supports is marking it read.
func (h *Handler) MarkContactRead(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := h.findByPathID(r, &contact); err != nil {
		notFoundOr500(w, err, "Contact")
		return
	}
	if err := h.DB.Model(&contact).Update("read", true).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database update failed")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Contact marked as read",
	})
}

// DELETE /api/contacts/{id}
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := h.findByPathID(r, &contact); err != nil {
		notFoundOr500(w, err, "Contact")
		return
	}
	if err := h.DB.Delete(&contact).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database delete failed")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Contact deleted",
	})
}
