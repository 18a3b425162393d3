package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/brunosousa09/sigh-hospital/internal/apierror"
	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/infra"
	"github.com/brunosousa09/sigh-hospital/internal/service"

	"github.com/gin-gonic/gin"
)

type EmpresasHandler struct{ svc service.EmpresaService }

func NewEmpresasHandler(svc service.EmpresaService) *EmpresasHandler {
	return &EmpresasHandler{svc: svc}
}

// Criar godoc
// @Summary Cadastra um fornecedor
// @Tags empresas
// @Accept json
// @Produce json
// @Param body body dto.SalvarEmpresaRequest true "Dados da empresa"
// @Success 201 {object} dto.EmpresaResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/empresas [post]
func (h *EmpresasHandler) Criar(c *gin.Context) {
	var req dto.SalvarEmpresaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		h.erro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EmpresasHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SalvarEmpresaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		h.erro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmpresasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Query("busca"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar empresas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmpresasHandler) Buscar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), id)
	if err != nil {
		h.erro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
// @Summary Desativa um fornecedor sem notas pendentes
// @Tags empresas
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/empresas/{id} [delete]
func (h *EmpresasHandler) Excluir(c *gin.Context) {
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

func (h *EmpresasHandler) Pendencias(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Pendencias(c.Request.Context(), id)
	if err != nil {
		h.erro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Extrato streams the supplier statement as a download.
// ?formato=pdf (default) or xlsx.
func (h *EmpresasHandler) Extrato(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	extrato, err := h.svc.Extrato(c.Request.Context(), id)
	if err != nil {
		h.erro(c, err)
		return
	}

	switch c.DefaultQuery("formato", "pdf") {
	case "pdf":
		pdf, err := infra.GerarExtratoPDF(extrato)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar o extrato"))
			return
		}
		nome := fmt.Sprintf("extrato_%s.pdf", extrato.Empresa.ID)
		c.Header("Content-Disposition", `attachment; filename="`+nome+`"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
	case "xlsx":
		xlsx, err := infra.GerarExtratoXLSX(extrato)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar o extrato"))
			return
		}
		nome := fmt.Sprintf("extrato_%s.xlsx", extrato.Empresa.ID)
		c.Header("Content-Disposition", `attachment; filename="`+nome+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsx)
	default:
		c.JSON(http.StatusBadRequest, apierror.New("Formato deve ser pdf ou xlsx"))
	}
}

func (h *EmpresasHandler) erro(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmpresaNaoEncontrada):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCNPJDuplicado), errors.Is(err, service.ErrPendenciasAbertas):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCNPJInvalido):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}
