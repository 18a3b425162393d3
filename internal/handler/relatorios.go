package handler

import (
	"net/http"

	"github.com/brunosousa09/sigh-hospital/internal/apierror"
	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

// KPIs godoc
// @Summary Resumo do painel (totais, saldo e em aberto)
// @Tags relatorios
// @Produce json
// @Success 200 {object} dto.KPIResponse
// @Router /v1/relatorios/kpis [get]
func (h *RelatoriosHandler) KPIs(c *gin.Context) {
	resp, err := h.svc.KPIs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao calcular indicadores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RelatoriosHandler) Comparativo(c *gin.Context) {
	var filtro dto.TransacaoFiltro
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtros inválidos"))
		return
	}
	resp, err := h.svc.Comparativo(c.Request.Context(), filtro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao montar o comparativo"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
