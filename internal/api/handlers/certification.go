package handlers

import (
	"net/http"

	"github.com/rohits-web03/portfolio-server/internal/models"
	"github.com/rohits-web03/portfolio-server/internal/utils"
	"gorm.io/gorm"
)

type certificationResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Institution    string `json:"institution"`
	Description    string `json:"description"`
	DateAwarded    any    `json:"date_awarded"`
	Order          int    `json:"order"`
	IsActive       bool   `json:"is_active"`
	CertificateURL string `json:"certificate_url"`
}

func toCertificationResponse(c models.Certification) certificationResponse {
	return certificationResponse{
		ID:             c.ID.String(),
		Title:          c.Title,
		Institution:    c.Institution,
		Description:    c.Description,
		DateAwarded:    fmtDate(c.DateAwarded),
		Order:          c.Order,
		IsActive:       c.IsActive,
		CertificateURL: c.CertificateURL,
	}
}

// GET /api/certifications
func (h *Handler) ListCertifications(w http.ResponseWriter, r *http.Request) {
	var certs []models.Certification
	if err := h.DB.Order(byDisplayOrder).Find(&certs).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	out := make([]certificationResponse, 0, len(certs))
	for _, c := range certs {
		out = append(out, toCertificationResponse(c))
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Certifications retrieved successfully",
		Data:    out,
	})
}

// POST /api/certifications
func (h *Handler) CreateCertification(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid form")
		return
	}

	title, _ := formValue(r, "title")
	institution, _ := formValue(r, "institution")
	if title == "" || institution == "" {
		utils.Error(w, http.StatusBadRequest, "Title and institution required")
		return
	}

	cert := models.Certification{
		Title:       title,
		Institution: institution,
		IsActive:    true,
	}
	if v, ok := formValue(r, "description"); ok {
		cert.Description = v
	}
	if v, ok := formValue(r, "date_awarded"); ok && v != "" {
		d, err := parseDate(v)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid date_awarded, expected YYYY-MM-DD")
			return
		}
		cert.DateAwarded = &d
	}
	if v, ok := formValue(r, "order"); ok {
		cert.Order = parseInt(v, 0)
	}
	if v, ok := formValue(r, "is_active"); ok {
		cert.IsActive = parseBool(v)
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if fh := formFile(r, "certificate"); fh != nil {
			url, err := h.Store.SaveHeader(fh, "cert", -1)
			if err != nil {
				return err
			}
			if url != "" {
				cert.CertificateURL = url
			}
		}
		return tx.Create(&cert).Error
	})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create certification")
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Certification created",
		Data:    map[string]string{"id": cert.ID.String()},
	})
}

// PUT /api/certifications/{id}
func (h *Handler) UpdateCertification(w http.ResponseWriter, r *http.Request) {
	var cert models.Certification
	if err := h.findByPathID(r, &cert); err != nil {
		notFoundOr500(w, err, "Certification")
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid form")
		return
	}

	if v, ok := formValue(r, "title"); ok {
		cert.Title = v
	}
	if v, ok := formValue(r, "institution"); ok {
		cert.Institution = v
	}
	if v, ok := formValue(r, "description"); ok {
		cert.Description = v
	}
	if v, ok := formValue(r, "date_awarded"); ok {
		if v == "" {
			cert.DateAwarded = nil
		} else {
			d, err := parseDate(v)
			if err != nil {
				utils.Error(w, http.StatusBadRequest, "Invalid date_awarded, expected YYYY-MM-DD")
				return
			}
			cert.DateAwarded = &d
		}
	}
	if v, ok := formValue(r, "order"); ok {
		cert.Order = parseInt(v, cert.Order)
	}
	if v, ok := formValue(r, "is_active"); ok {
		cert.IsActive = parseBool(v)
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if fh := formFile(r, "certificate"); fh != nil {
			url, err := h.Store.SaveHeader(fh, "cert", -1)
			if err != nil {
				return err
			}
			if url != "" {
				cert.CertificateURL = url
			}
		}
		return tx.Save(&cert).Error
	})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to update certification")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Certification updated",
	})
}

// DELETE /api/certifications/{id}
func (h *Handler) DeleteCertification(w http.ResponseWriter, r *http.Request) {
	var cert models.Certification
	if err := h.findByPathID(r, &cert); err != nil {
		notFoundOr500(w, err, "Certification")
		return
	}
	if err := h.DB.Delete(&cert).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to delete certification")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Certification deleted",
	})
}
