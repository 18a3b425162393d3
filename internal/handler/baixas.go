package handler

import (
	"errors"
	"net/http"

	"github.com/brunosousa09/sigh-hospital/internal/apierror"
	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/service"

	"github.com/gin-gonic/gin"
)

type BaixasHandler struct{ svc service.BaixaService }

func NewBaixasHandler(svc service.BaixaService) *BaixasHandler {
	return &BaixasHandler{svc: svc}
}

// Registrar godoc
// @Summary Dá baixa em uma nota pendente
// @Description Cria o pagamento e marca a nota como paga em uma única transação.
// @Tags baixas
// @Accept json
// @Produce json
// @Param body body dto.RegistrarBaixaRequest true "Dados da baixa"
// @Success 201 {object} dto.BaixaResponse
// @Failure 409 {object} apierror.APIError
// @Failure 422 {object} apierror.APIError
// @Router /v1/baixas [post]
func (h *BaixasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarBaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEntradaQuitada):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		case errors.Is(err, service.ErrDataFutura),
			errors.Is(err, service.ErrDataAnteriorEntrada),
			errors.Is(err, service.ErrEmendaInvalida),
			errors.Is(err, service.ErrSetorInvalido):
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}
