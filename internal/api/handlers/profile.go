package handlers

import (
	"errors"
	"net/http"

	"github.com/rohits-web03/portfolio-server/internal/models"
	"github.com/rohits-web03/portfolio-server/internal/utils"
	"gorm.io/gorm"
)

// GET /api/profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	err := h.DB.First(&profile).Error
	switch {
	case err == nil:
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Profile retrieved successfully",
			Data:    profile,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Not an error: the profile just hasn't been filled in yet.
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Profile not set",
		})
	default:
		utils.Error(w, http.StatusInternalServerError, "Database error")
	}
}

// PUT /api/profile
// Upsert keyed by "first row found". Fields apply only when present; an
// uploaded "cv" file replaces the CV URL (the old file is left behind).
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid form")
		return
	}

	var profile models.Profile
	err := h.DB.First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	if v, ok := formValue(r, "name"); ok {
		profile.Name = v
	}
	if v, ok := formValue(r, "title"); ok {
		profile.Title = v
	}
	if v, ok := formValue(r, "bio"); ok {
		profile.Bio = v
	}
	if v, ok := formValue(r, "email"); ok {
		profile.Email = v
	}
	if v, ok := formValue(r, "phone"); ok {
		profile.Phone = v
	}
	if v, ok := formValue(r, "location"); ok {
		profile.Location = v
	}
	if v, ok := formValue(r, "github"); ok {
		profile.Github = v
	}
	if v, ok := formValue(r, "linkedin"); ok {
		profile.Linkedin = v
	}
	if v, ok := formValue(r, "twitter"); ok {
		profile.Twitter = v
	}
	if v, ok := formValue(r, "website"); ok {
		profile.Website = v
	}
	if v, ok := formValue(r, "avatar"); ok {
		profile.Avatar = v
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if fh := formFile(r, "cv"); fh != nil {
			url, err := h.Store.SaveHeader(fh, "cv", -1)
			if err != nil {
				return err
			}
			if url != "" {
				profile.CVURL = url
			}
		}
		return tx.Save(&profile).Error
	})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile updated",
	})
}
