package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rohits-web03/portfolio-server/internal/auth"
	"github.com/rohits-web03/portfolio-server/internal/models"
	"github.com/rohits-web03/portfolio-server/internal/utils"
	"gorm.io/gorm"
)

// AdminRequired guards mutating routes: the request must carry a valid
// bearer token (401 otherwise) and the token's user must exist and be an
// admin (403 otherwise). The wrapped handler runs untouched; it gets no
// injected identity because no handler needs one.
func AdminRequired(db *gorm.DB, tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
					Success: false,
					Message: "Missing or invalid token",
				})
				return
			}

			userID, ok := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if !ok {
				utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
					Success: false,
					Message: "Invalid or expired token",
				})
				return
			}

			var user models.User
			err := db.Where("id = ?", userID).First(&user).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				utils.JSONResponse(w, http.StatusForbidden, utils.Payload{
					Success: false,
					Message: "Unauthorized",
				})
				return
			case err != nil:
				utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
					Success: false,
					Message: "Database error",
				})
				return
			case !user.IsAdmin:
				utils.JSONResponse(w, http.StatusForbidden, utils.Payload{
					Success: false,
					Message: "Unauthorized",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
