package handler

import (
	"errors"
	"net/http"

	"github.com/brunosousa09/sigh-hospital/internal/apierror"
	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/middleware"
	"github.com/brunosousa09/sigh-hospital/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc     service.AuthService
	sessoes service.SessaoService
}

func NewAuthHandler(svc service.AuthService, sessoes service.SessaoService) *AuthHandler {
	return &AuthHandler{svc: svc, sessoes: sessoes}
}

// Login godoc
// @Summary Login de usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	if err := h.sessoes.Tocar(c.Request.Context(), resp.User.ID); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao iniciar sessão"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	if err := h.sessoes.Tocar(c.Request.Context(), resp.User.ID); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao renovar sessão"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout drops the server-side session; the JWT naturally lapses on its own.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := h.sessoes.Encerrar(c.Request.Context(), claims.Subject); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao encerrar sessão"))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Usuários ─────────────────────────────────────────────────────────────────

type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Criar godoc
// @Summary Cria um usuário (papel derivado do sufixo do username)
// @Tags usuarios
// @Accept json
// @Produce json
// @Param body body dto.CriarUsuarioRequest true "Dados do usuário"
// @Success 201 {object} dto.UsuarioResponse
// @Failure 403 {object} apierror.APIError
// @Router /v1/usuarios [post]
func (h *UsuariosHandler) Criar(c *gin.Context) {
	var req dto.CriarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.CriarUsuario(c.Request.Context(), claims.Rol, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSemPermissaoCriar):
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		case errors.Is(err, service.ErrUsernameEmUso):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar usuários"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AtualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarUsuario(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) Desativar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DesativarUsuario(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UsuariosHandler) Reativar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.ReativarUsuario(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
