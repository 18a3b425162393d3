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

type NotificacoesHandler struct{ svc service.NotificacaoService }

func NewNotificacoesHandler(svc service.NotificacaoService) *NotificacoesHandler {
	return &NotificacoesHandler{svc: svc}
}

// Criar godoc
// @Summary Publica um aviso para os usuários
// @Tags notificacoes
// @Accept json
// @Produce json
// @Param body body dto.CriarNotificacaoRequest true "Dados do aviso"
// @Success 201 {object} dto.NotificacaoResponse
// @Router /v1/notificacoes [post]
func (h *NotificacoesHandler) Criar(c *gin.Context) {
	var req dto.CriarNotificacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *NotificacoesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar notificações"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Pendente returns the next unread notice for the logged-in user, or 204 when
// there is nothing to show.
func (h *NotificacoesHandler) Pendente(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ProximaPendente(c.Request.Context(), claims.Subject, claims.Rol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao buscar notificações"))
		return
	}
	if resp == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarcarLida records that the logged-in user dismissed the notice.
func (h *NotificacoesHandler) MarcarLida(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.MarcarLida(c.Request.Context(), claims.Subject, id); err != nil {
		h.erro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificacoesHandler) Desativar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Desativar(c.Request.Context(), id); err != nil {
		h.erro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificacoesHandler) Excluir(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		h.erro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificacoesHandler) erro(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotificacaoNaoEncontrada) {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, apierror.New("Erro ao atualizar notificação"))
}
