package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rohits-web03/portfolio-server/internal/models"
	"github.com/rohits-web03/portfolio-server/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input credentials
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Username == "" || input.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	err := h.DB.Where("username = ? AND is_admin = ?", input.Username, true).First(&user).Error
	switch {
	case err == nil:
		// user found
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	default:
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Tokens.Issue(user.ID.String())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Login successful",
		Data:    map[string]string{"token": token},
	})
}

// POST /api/admin/create
// One-time bootstrap: open only while no admin exists yet.
func (h *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var existing models.User
	err := h.DB.Where("is_admin = ?", true).First(&existing).Error
	switch {
	case err == nil:
		utils.Error(w, http.StatusBadRequest, "Admin user already exists")
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no admin yet, proceed
	default:
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	var input credentials
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Username == "" || input.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Username and password required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database insert failed")
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Admin user created successfully",
	})
}
