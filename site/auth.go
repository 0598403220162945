package site

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/garnizeh/aurora/internal/config"
)

// AuthHandler mints staff tokens for the lead export API. There is a
// single credential, held bcrypt-hashed in config; content authoring has
// its own external surface and no accounts here.
type AuthHandler struct {
	staff         config.StaffConfig
	jwtSecret     string
	tokenDuration time.Duration
}

func NewAuthHandler(staff config.StaffConfig, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{staff: staff, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	if h.staff.Email == "" || req.Email != h.staff.Email {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.staff.PasswordHash), []byte(req.Password)); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	claims := jwt.MapClaims{
		"email": req.Email,
		"exp":   time.Now().Add(h.tokenDuration).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		http.Error(w, "Error creating token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, authResponse{Token: signed}, http.StatusOK)
}
