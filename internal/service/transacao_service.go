package service

import (
	"context"
	"errors"

	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/model"
	"github.com/brunosousa09/sigh-hospital/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrDataEntradaFutura = errors.New("a data de entrada não pode ser futura")
	ErrCamposFaltando    = errors.New("preencha os campos obrigatórios: empresa, nf, valor e data de entrada")
)

type TransacaoService interface {
	RegistrarEntrada(ctx context.Context, req dto.RegistrarEntradaRequest) (*dto.TransacaoResponse, error)
	AtualizarEntrada(ctx context.Context, id uuid.UUID, req dto.AtualizarEntradaRequest) (*dto.TransacaoResponse, error)
	Listar(ctx context.Context, filtro dto.TransacaoFiltro) (*dto.TransacaoListResponse, error)
	ListarPendencias(ctx context.Context, busca string) (*dto.TransacaoListResponse, error)
	ListarPagamentos(ctx context.Context, busca string) (*dto.TransacaoListResponse, error)
}

type transacaoService struct {
	repo        repository.TransacaoRepository
	empresaRepo repository.EmpresaRepository
}

func NewTransacaoService(repo repository.TransacaoRepository, empresaRepo repository.EmpresaRepository) TransacaoService {
	return &transacaoService{repo: repo, empresaRepo: empresaRepo}
}

// RegistrarEntrada validates and creates a new invoice with status pendente.
// Validation order is fixed — first failure wins, nothing is written on
// failure: (1) entry date must not be after today; (2) empresa, nf, valor and
// data_entrada are all required.
func (s *transacaoService) RegistrarEntrada(ctx context.Context, req dto.RegistrarEntradaRequest) (*dto.TransacaoResponse, error) {
	if req.DataEntrada != "" {
		data, err := parseData(req.DataEntrada)
		if err != nil {
			return nil, err
		}
		if data.After(hoje()) {
			return nil, ErrDataEntradaFutura
		}
	}

	if req.EmpresaID == "" || req.NF == "" || req.DataEntrada == "" || req.Valor.IsZero() {
		return nil, ErrCamposFaltando
	}
	if req.Valor.IsNegative() {
		return nil, ErrCamposFaltando
	}

	empresaID, err := uuid.Parse(req.EmpresaID)
	if err != nil {
		return nil, errors.New("empresa inválida")
	}
	empresa, err := s.empresaRepo.FindByID(ctx, empresaID)
	if err != nil {
		return nil, errors.New("empresa não encontrada")
	}

	data, _ := parseData(req.DataEntrada)

	descricao := req.Descricao
	if descricao == "" {
		descricao = "Sem descrição"
	}
	tipoMaterial := req.TipoMaterial
	if tipoMaterial == "" {
		tipoMaterial = "geral"
	}
	destino := req.DestinoEntrada
	if destino == "" {
		destino = "hospital"
	}

	nf := req.NF
	t := &model.Transacao{
		EmpresaID:      empresa.ID,
		Tipo:           model.TipoEntrada,
		Status:         model.StatusPendente,
		NF:             &nf,
		Descricao:      descricao,
		Valor:          req.Valor,
		TipoMaterial:   &tipoMaterial,
		DestinoEntrada: &destino,
		DataEntrada:    &data,
	}
	if err := s.repo.Create(ctx, nil, t); err != nil {
		return nil, err
	}
	t.Empresa = empresa

	resp := TransacaoParaResponse(t)
	return &resp, nil
}

// AtualizarEntrada edits an existing invoice (NFs screen). Status never moves
// here — quittance happens only through the baixa operation, and a settled
// invoice never reverts.
func (s *transacaoService) AtualizarEntrada(ctx context.Context, id uuid.UUID, req dto.AtualizarEntradaRequest) (*dto.TransacaoResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("transação não encontrada")
	}
	if t.Tipo != model.TipoEntrada {
		return nil, errors.New("apenas entradas podem ser editadas")
	}

	if req.NF != "" {
		nf := req.NF
		t.NF = &nf
	}
	if req.Valor != nil {
		if req.Valor.IsNegative() || req.Valor.IsZero() {
			return nil, errors.New("valor deve ser positivo")
		}
		t.Valor = *req.Valor
	}
	if req.Descricao != "" {
		t.Descricao = req.Descricao
	}
	if req.DataEntrada != "" {
		data, err := parseData(req.DataEntrada)
		if err != nil {
			return nil, err
		}
		if data.After(hoje()) {
			return nil, ErrDataEntradaFutura
		}
		if t.DataPagamento != nil && t.DataPagamento.Before(data) {
			return nil, errors.New("data de entrada posterior à data do pagamento")
		}
		t.DataEntrada = &data
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	resp := TransacaoParaResponse(t)
	return &resp, nil
}

func (s *transacaoService) Listar(ctx context.Context, filtro dto.TransacaoFiltro) (*dto.TransacaoListResponse, error) {
	ts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtradas := FiltrarTransacoes(ts, filtro)
	OrdenarTransacoes(filtradas, filtro.Ordenar)
	return listResponse(filtradas), nil
}

// ListarPendencias is the "Pendências Financeiras" screen: invoices awaiting
// payment, optionally narrowed by the free-text search.
func (s *transacaoService) ListarPendencias(ctx context.Context, busca string) (*dto.TransacaoListResponse, error) {
	return s.Listar(ctx, dto.TransacaoFiltro{
		Tipo:    model.TipoEntrada,
		Status:  model.StatusPendente,
		Busca:   busca,
		Ordenar: OrdenarDataAsc,
	})
}

// ListarPagamentos is the "Histórico de Pagamentos" screen: all baixas,
// newest first.
func (s *transacaoService) ListarPagamentos(ctx context.Context, busca string) (*dto.TransacaoListResponse, error) {
	return s.Listar(ctx, dto.TransacaoFiltro{
		Tipo:    model.TipoSaida,
		Busca:   busca,
		Ordenar: OrdenarDataDesc,
	})
}

func listResponse(ts []model.Transacao) *dto.TransacaoListResponse {
	resp := &dto.TransacaoListResponse{
		Data:  make([]dto.TransacaoResponse, 0, len(ts)),
		Total: len(ts),
	}
	for i := range ts {
		resp.Data = append(resp.Data, TransacaoParaResponse(&ts[i]))
	}
	return resp
}
