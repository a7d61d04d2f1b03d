package api

import (
	"fmt"
	"net/http"

	"github.com/rohits-web03/portfolio-server/internal/api/handlers"
	"github.com/rohits-web03/portfolio-server/internal/api/middleware"
	"github.com/rohits-web03/portfolio-server/internal/auth"
	"github.com/rohits-web03/portfolio-server/internal/config"
	"github.com/rohits-web03/portfolio-server/internal/repositories"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// SetupRouter wires every route. Reads are open; mutations sit behind the
// admin guard except contact submission and the one-time admin bootstrap.
func SetupRouter(cfg config.Config, db *gorm.DB, tokens *auth.TokenService, store *repositories.UploadStore) http.Handler {
	h := handlers.New(db, tokens, store)
	admin := middleware.AdminRequired(db, tokens)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	// ---------- AUTH ----------
	mux.HandleFunc("POST /api/admin/login", h.Login)
	mux.HandleFunc("POST /api/admin/create", h.CreateAdmin)

	// ---------- PROJECTS ----------
	mux.HandleFunc("GET /api/projects", h.ListProjects)
	mux.HandleFunc("GET /api/projects/{id}", h.GetProject)
	mux.Handle("POST /api/projects", admin(http.HandlerFunc(h.CreateProject)))
	mux.Handle("PUT /api/projects/{id}", admin(http.HandlerFunc(h.UpdateProject)))
	mux.Handle("DELETE /api/projects/{id}", admin(http.HandlerFunc(h.DeleteProject)))

	// ---------- UPLOADS ----------
	mux.HandleFunc("GET /api/uploads/{filename}", h.ServeUpload)

	// ---------- PROFILE ----------
	mux.HandleFunc("GET /api/profile", h.GetProfile)
	mux.Handle("PUT /api/profile", admin(http.HandlerFunc(h.UpdateProfile)))

	// ---------- CERTIFICATIONS ----------
	mux.HandleFunc("GET /api/certifications", h.ListCertifications)
	mux.Handle("POST /api/certifications", admin(http.HandlerFunc(h.CreateCertification)))
	mux.Handle("PUT /api/certifications/{id}", admin(http.HandlerFunc(h.UpdateCertification)))
	mux.Handle("DELETE /api/certifications/{id}", admin(http.HandlerFunc(h.DeleteCertification)))

	// ---------- SKILLS ----------
	mux.HandleFunc("GET /api/skills", h.ListSkills)
	mux.Handle("POST /api/skills", admin(http.HandlerFunc(h.CreateSkill)))
	mux.Handle("PUT /api/skills/{id}", admin(http.HandlerFunc(h.UpdateSkill)))
	mux.Handle("DELETE /api/skills/{id}", admin(http.HandlerFunc(h.DeleteSkill)))

	// ---------- EXPERIENCE + REFERENCES ----------
	mux.HandleFunc("GET /api/experience", h.ListExperience)
	mux.Handle("POST /api/experience", admin(http.HandlerFunc(h.CreateExperience)))
	mux.Handle("PUT /api/experience/{id}", admin(http.HandlerFunc(h.UpdateExperience)))
	mux.Handle("DELETE /api/experience/{id}", admin(http.HandlerFunc(h.DeleteExperience)))
	mux.HandleFunc("GET /api/experience/{id}/references", h.ListReferences)
	mux.Handle("POST /api/experience/{id}/references", admin(http.HandlerFunc(h.CreateReference)))
	mux.Handle("PUT /api/references/{id}", admin(http.HandlerFunc(h.UpdateReference)))
	mux.Handle("DELETE /api/references/{id}", admin(http.HandlerFunc(h.DeleteReference)))

	// ---------- EDUCATION ----------
	mux.HandleFunc("GET /api/education", h.ListEducation)
	mux.Handle("POST /api/education", admin(http.HandlerFunc(h.CreateEducation)))
	mux.Handle("PUT /api/education/{id}", admin(http.HandlerFunc(h.UpdateEducation)))
	mux.Handle("DELETE /api/education/{id}", admin(http.HandlerFunc(h.DeleteEducation)))

	// ---------- CONTACTS ----------
	mux.HandleFunc("GET /api/contacts", h.ListContacts)
	mux.HandleFunc("POST /api/contacts", h.CreateContact)
	mux.Handle("PUT /api/contacts/{id}", admin(http.HandlerFunc(h.MarkContactRead)))
	mux.Handle("DELETE /api/contacts/{id}", admin(http.HandlerFunc(h.DeleteContact)))

	// ---------- STATS ----------
	mux.HandleFunc("GET /api/stats", h.GetStats)

	c := cors.New(cfg.CorsConfig)
	handler := c.Handler(mux)
	handler = middleware.Logger(handler)
	return handler
}
