package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/portfolio-server/internal/models"
	"github.com/rohits-web03/portfolio-server/internal/utils"
	"gorm.io/gorm"
)

const (
	minProjectImages = 1
	maxProjectImages = 6
)

type projectResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	GithubURL    string   `json:"github_url"`
	LiveURL      string   `json:"live_url"`
	Technologies string   `json:"technologies"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
	IsActive     bool     `json:"is_active"`
	CreatedAt    string   `json:"created_at"`
}

func toProjectResponse(p models.Project) projectResponse {
	sort.Slice(p.Images, func(i, j int) bool { return p.Images[i].Order < p.Images[j].Order })
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.URL)
	}
	return projectResponse{
		ID:           p.ID.String(),
		Title:        p.Title,
		Description:  p.Description,
		Images:       images,
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		Technologies: p.Technologies,
		Featured:     p.Featured,
		Order:        p.Order,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

// GET /api/projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	var projects []models.Project
	if err := h.DB.Preload("Images").Order(byDisplayOrder).Find(&projects).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Projects retrieved successfully",
		Data:    out,
	})
}

// GET /api/projects/{id}
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Project not found")
		return
	}
	var project models.Project
	if err := h.DB.Preload("Images").Where("id = ?", id).First(&project).Error; err != nil {
		notFoundOr500(w, err, "Project")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Project retrieved successfully",
		Data:    toProjectResponse(project),
	})
}

// POST /api/projects
// Multipart: scalar fields plus 1-6 files under "images". The project row
// and all image rows commit in one transaction; any upload write failure
// rolls the whole request back.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid form")
		return
	}

	title, _ := formValue(r, "title")
	description, _ := formValue(r, "description")
	if title == "" || description == "" {
		utils.Error(w, http.StatusBadRequest, "Title and description required")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) < minProjectImages {
		utils.Error(w, http.StatusBadRequest, "At least one image is required")
		return
	}
	if len(files) > maxProjectImages {
		utils.Error(w, http.StatusBadRequest, "Maximum 6 images allowed")
		return
	}

	githubURL, _ := formValue(r, "github_url")
	liveURL, _ := formValue(r, "live_url")
	technologies, _ := formValue(r, "technologies")
	featured, _ := formValue(r, "featured")
	order, _ := formValue(r, "order")
	isActive := true
	if v, ok := formValue(r, "is_active"); ok {
		isActive = parseBool(v)
	}

	project := models.Project{
		Title:        title,
		Description:  description,
		GithubURL:    githubURL,
		LiveURL:      liveURL,
		Technologies: technologies,
		Featured:     parseBool(featured),
		Order:        parseInt(order, 0),
		IsActive:     isActive,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		for idx, fh := range files {
			url, err := h.Store.SaveHeader(fh, "", idx)
			if err != nil {
				return err
			}
			if url == "" {
				continue
			}
			image := models.ProjectImage{ProjectID: project.ID, URL: url, Order: idx}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Project created",
		Data:    map[string]string{"id": project.ID.String()},
	})
}

// PUT /api/projects/{id}
// Fields apply only when present in the form. A non-empty "images" batch
// atomically replaces the whole image set; no batch leaves it untouched.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := h.findByPathID(r, &project); err != nil {
		notFoundOr500(w, err, "Project")
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid form")
		return
	}

	if v, ok := formValue(r, "title"); ok {
		project.Title = v
	}
	if v, ok := formValue(r, "description"); ok {
		project.Description = v
	}
	if v, ok := formValue(r, "github_url"); ok {
		project.GithubURL = v
	}
	if v, ok := formValue(r, "live_url"); ok {
		project.LiveURL = v
	}
	if v, ok := formValue(r, "technologies"); ok {
		project.Technologies = v
	}
	if v, ok := formValue(r, "featured"); ok {
		project.Featured = parseBool(v)
	}
	if v, ok := formValue(r, "order"); ok {
		project.Order = parseInt(v, project.Order)
	}
	if v, ok := formValue(r, "is_active"); ok {
		project.IsActive = parseBool(v)
	}

	files := r.MultipartForm.File["images"]
	if len(files) > maxProjectImages {
		utils.Error(w, http.StatusBadRequest, "Maximum 6 images allowed")
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&project).Error; err != nil {
			return err
		}
		if len(files) == 0 {
			return nil
		}
		// Replace the full image set. Old files stay on disk as orphans.
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		for idx, fh := range files {
			url, err := h.Store.SaveHeader(fh, "", idx)
			if err != nil {
				return err
			}
			if url == "" {
				continue
			}
			image := models.ProjectImage{ProjectID: project.ID, URL: url, Order: idx}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to update project")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Project updated",
	})
}

// DELETE /api/projects/{id}
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := h.findByPathID(r, &project); err != nil {
		notFoundOr500(w, err, "Project")
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Project deleted",
	})
}
