package user

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/example/perfdash/internal/config"
	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func googleOAuthConfig(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  redirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// GoogleLogin signs a user in from a Google identity. Accepts either a raw
// id_token or an authorization code, which is exchanged first.
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if os.Getenv("GOOGLE_CLIENT_ID") == "" {
		config.Error(w, http.StatusNotImplemented, "google sign-in is not configured")
		return
	}

	var dto GoogleLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	idToken := dto.IDToken
	if idToken == "" && dto.Code != "" {
		token, err := googleOAuthConfig(dto.RedirectURI).Exchange(r.Context(), dto.Code)
		if err != nil {
			log.WithError(err).Warn("Failed to exchange Google authorization code")
			config.Error(w, http.StatusUnauthorized, "invalid authorization code")
			return
		}
		idToken, _ = token.Extra("id_token").(string)
	}
	if idToken == "" {
		config.Error(w, http.StatusBadRequest, "id_token or code is required")
		return
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{os.Getenv("GOOGLE_CLIENT_ID")}); err != nil {
		log.WithError(err).Warn("Rejected invalid Google id token")
		config.Error(w, http.StatusUnauthorized, "invalid google token")
		return
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		log.WithError(err).Error("Failed to decode Google id token")
		config.Error(w, http.StatusUnauthorized, "invalid google token")
		return
	}

	u, err := h.service.FindOrCreateByEmail(r.Context(), claimSet.Email)
	if err != nil {
		log.WithError(err).Error("Failed to provision user from Google sign-in")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondWithTokens(w, r, u, http.StatusOK)
}
