package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/model"
	"github.com/brunosousa09/sigh-hospital/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEntradaQuitada     = errors.New("esta nota já foi quitada")
	ErrDataFutura         = errors.New("a data do pagamento não pode ser futura")
	ErrDataAnteriorEntrada = errors.New("a data do pagamento não pode ser anterior à data de entrada da nota")
	ErrEmendaInvalida     = errors.New("emenda não cadastrada para esta empresa")
	ErrSetorInvalido      = errors.New("setor deve ser Hospital, Atenção Primária ou Farmácia")
)

// Setores that can take delivery of a payment.
var setoresValidos = map[string]bool{
	"Hospital":         true,
	"Atenção Primária": true,
	"Farmácia":         true,
}

type BaixaService interface {
	Registrar(ctx context.Context, req dto.RegistrarBaixaRequest) (*dto.BaixaResponse, error)
}

type baixaService struct {
	transacaoRepo repository.TransacaoRepository
	empresaRepo   repository.EmpresaRepository
}

func NewBaixaService(transacaoRepo repository.TransacaoRepository, empresaRepo repository.EmpresaRepository) BaixaService {
	return &baixaService{transacaoRepo: transacaoRepo, empresaRepo: empresaRepo}
}

// Registrar settles a pending invoice. The payment insert and the invoice
// status flip run in one transaction: either both land or neither does.
func (s *baixaService) Registrar(ctx context.Context, req dto.RegistrarBaixaRequest) (*dto.BaixaResponse, error) {
	empresaID, err := uuid.Parse(req.EmpresaID)
	if err != nil {
		return nil, errors.New("empresa inválida")
	}
	entradaID, err := uuid.Parse(req.EntradaID)
	if err != nil {
		return nil, errors.New("entrada inválida")
	}

	if !setoresValidos[req.Setor] {
		return nil, ErrSetorInvalido
	}

	empresa, err := s.empresaRepo.FindByID(ctx, empresaID)
	if err != nil {
		return nil, errors.New("empresa não encontrada")
	}

	entrada, err := s.transacaoRepo.FindByID(ctx, entradaID)
	if err != nil {
		return nil, errors.New("nota a quitar não encontrada")
	}
	if entrada.Tipo != model.TipoEntrada || entrada.EmpresaID != empresa.ID {
		return nil, errors.New("a nota informada não pertence a esta empresa")
	}
	if entrada.Status == model.StatusPago {
		return nil, ErrEntradaQuitada
	}

	dataPagamento, err := parseData(req.DataPagamento)
	if err != nil {
		return nil, err
	}
	if dataPagamento.After(hoje()) {
		return nil, ErrDataFutura
	}

	var aviso string
	if entrada.DataEntrada != nil {
		if dataPagamento.Before(*entrada.DataEntrada) {
			return nil, ErrDataAnteriorEntrada
		}
	} else {
		aviso = "a nota quitada não possui data de entrada registrada"
	}

	emenda := model.RecursoProprio
	if req.EmendaOrigem != "" && req.EmendaOrigem != model.RecursoProprio {
		if !empresa.TemEmenda(req.EmendaOrigem) {
			return nil, ErrEmendaInvalida
		}
		emenda = req.EmendaOrigem
	}

	descricao := fmt.Sprintf("[%s] %s", req.Setor, req.Motivo)
	eID := entrada.ID
	saida := &model.Transacao{
		EmpresaID:     empresa.ID,
		Tipo:          model.TipoSaida,
		Status:        model.StatusPago,
		NF:            entrada.NF,
		Descricao:     descricao,
		Valor:         entrada.Valor,
		EmendaOrigem:  &emenda,
		EntradaID:     &eID,
		DataPagamento: &dataPagamento,
	}

	err = runTx(ctx, s.transacaoRepo.DB(), func(tx *gorm.DB) error {
		if err := s.transacaoRepo.Create(ctx, tx, saida); err != nil {
			return err
		}
		if err := s.transacaoRepo.QuitarTx(tx, entrada.ID, dataPagamento); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEntradaQuitada
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entrada.Status = model.StatusPago
	entrada.DataPagamento = &dataPagamento
	saida.Empresa = empresa

	return &dto.BaixaResponse{
		Pagamento: TransacaoParaResponse(saida),
		Entrada:   TransacaoParaResponse(entrada),
		Aviso:     aviso,
	}, nil
}
