package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/example/perfdash/internal/auth"
	"github.com/example/perfdash/internal/config"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.service.Register(r.Context(), dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			config.Error(w, http.StatusConflict, "email already registered")
			return
		}
		log.WithError(err).Error("Failed to register user")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondWithTokens(w, r, u, http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.service.Authenticate(r.Context(), dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			config.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.WithError(err).Error("Failed to authenticate user")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondWithTokens(w, r, u, http.StatusOK)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	tokenStr := refreshTokenFromRequest(r)
	if tokenStr == "" {
		config.Error(w, http.StatusUnauthorized, "missing refresh token")
		return
	}

	claims, err := auth.ValidateJWT(tokenStr)
	if err != nil {
		log.WithError(err).Warn("Rejected invalid refresh token")
		config.Error(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	u, err := h.service.Me(auth.WithClaims(r.Context(), claims))
	if err != nil {
		log.WithError(err).Warn("Refresh token for unknown user")
		config.Error(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	h.respondWithTokens(w, r, u, http.StatusOK)
}

func (h *Handler) respondWithTokens(w http.ResponseWriter, r *http.Request, u *User, status int) {
	log := config.WithContext(r.Context())

	accessToken, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.AccessTokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to sign access token")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	refreshToken, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.RefreshTokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to sign refresh token")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	auth.SetAuthCookies(w, accessToken, refreshToken)

	config.JSON(w, status, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         u,
	})
}

func refreshTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		return body.RefreshToken
	}
	return ""
}
