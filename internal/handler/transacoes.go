package handler

import (
	"errors"
	"net/http"

	"github.com/brunosousa09/sigh-hospital/internal/apierror"
	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/service"

	"github.com/gin-gonic/gin"
)

type TransacoesHandler struct{ svc service.TransacaoService }

func NewTransacoesHandler(svc service.TransacaoService) *TransacoesHandler {
	return &TransacoesHandler{svc: svc}
}

// Registrar godoc
// @Summary Registra uma nota fiscal a pagar
// @Tags transacoes
// @Accept json
// @Produce json
// @Param body body dto.RegistrarEntradaRequest true "Dados da nota"
// @Success 201 {object} dto.TransacaoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/transacoes [post]
func (h *TransacoesHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarEntradaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return
	}

	resp, err := h.svc.RegistrarEntrada(c.Request.Context(), req)
	if err != nil {
		h.erro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TransacoesHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AtualizarEntradaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return
	}
	resp, err := h.svc.AtualizarEntrada(c.Request.Context(), id, req)
	if err != nil {
		h.erro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar serves the filtered transaction list used by the NFs and extrato
// screens. Filters arrive as query params and combine as a conjunction.
func (h *TransacoesHandler) Listar(c *gin.Context) {
	var filtro dto.TransacaoFiltro
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtros inválidos"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filtro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar transações"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransacoesHandler) Pendencias(c *gin.Context) {
	resp, err := h.svc.ListarPendencias(c.Request.Context(), c.Query("busca"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar pendências"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransacoesHandler) Pagamentos(c *gin.Context) {
	resp, err := h.svc.ListarPagamentos(c.Request.Context(), c.Query("busca"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar pagamentos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransacoesHandler) erro(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDataEntradaFutura), errors.Is(err, service.ErrCamposFaltando):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}
