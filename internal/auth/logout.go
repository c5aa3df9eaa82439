package auth

import (
	"net/http"

	"github.com/saulo-duarte/testseries-lambda/internal/config"
)

type Handler struct {
	cookieDomain string
}

func NewHandler(cookieDomain string) *Handler {
	return &Handler{cookieDomain: cookieDomain}
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
