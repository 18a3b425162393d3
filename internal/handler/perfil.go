package handler

import (
	"net/http"

	"github.com/brunosousa09/sigh-hospital/internal/apierror"
	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/middleware"
	"github.com/brunosousa09/sigh-hospital/internal/service"

	"github.com/gin-gonic/gin"
)

// PerfilHandler serves the authenticated user's own data and UI preferences.
type PerfilHandler struct {
	sessoes service.SessaoService
}

func NewPerfilHandler(sessoes service.SessaoService) *PerfilHandler {
	return &PerfilHandler{sessoes: sessoes}
}

func (h *PerfilHandler) Eu(c *gin.Context) {
	claims := middleware.GetClaims(c)
	c.JSON(http.StatusOK, gin.H{
		"id":       claims.Subject,
		"username": claims.Username,
		"rol":      claims.Rol,
	})
}

func (h *PerfilHandler) Preferencias(c *gin.Context) {
	claims := middleware.GetClaims(c)
	prefs, err := h.sessoes.Preferencias(c.Request.Context(), claims.Subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao carregar preferências"))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PerfilHandler) SalvarPreferencias(c *gin.Context) {
	var prefs dto.PreferenciasUI
	if !bindAndValidate(c, &prefs) {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.sessoes.SalvarPreferencias(c.Request.Context(), claims.Subject, prefs); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao salvar preferências"))
		return
	}
	c.JSON(http.StatusOK, prefs)
}
