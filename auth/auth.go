package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"dokan/globals"
	"dokan/middleware"
	"dokan/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

// Handler gates the admin panel behind a shared secret. This mirrors the
// original single-password gate, moved server-side: the password check
// happens here and admin routes require the issued token instead of
// trusting the browser.
type Handler struct {
	Password     string
	PasswordHash string
}

func NewHandler(password, passwordHash string) *Handler {
	return &Handler{Password: password, PasswordHash: passwordHash}
}

func (h *Handler) check(password string) bool {
	if h.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(h.Password), []byte(password)) == 1
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Password is required")
		return
	}

	if !h.check(input.Password) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	now := time.Now()
	claims := middleware.Claims{
		Username: "admin",
		UserID:   "admin",
		Role:     []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status": "success",
		"token":  token,
	})
}
