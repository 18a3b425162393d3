package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/model"
	"github.com/brunosousa09/sigh-hospital/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCNPJInvalido      = errors.New("CNPJ deve conter 14 dígitos")
	ErrCNPJDuplicado     = errors.New("já existe uma empresa cadastrada com este CNPJ")
	ErrPendenciasAbertas = errors.New("a empresa possui notas pendentes e não pode ser excluída")
	ErrEmpresaNaoEncontrada = errors.New("empresa não encontrada")
)

type EmpresaService interface {
	Criar(ctx context.Context, req dto.SalvarEmpresaRequest) (*dto.EmpresaResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.SalvarEmpresaRequest) (*dto.EmpresaResponse, error)
	Listar(ctx context.Context, busca string) ([]dto.EmpresaResponse, error)
	Buscar(ctx context.Context, id uuid.UUID) (*dto.EmpresaResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
	Pendencias(ctx context.Context, id uuid.UUID) (*dto.EmpresaPendenciasResponse, error)
	Extrato(ctx context.Context, id uuid.UUID) (*dto.ExtratoEmpresa, error)
}

type empresaService struct {
	repo          repository.EmpresaRepository
	transacaoRepo repository.TransacaoRepository
}

func NewEmpresaService(repo repository.EmpresaRepository, transacaoRepo repository.TransacaoRepository) EmpresaService {
	return &empresaService{repo: repo, transacaoRepo: transacaoRepo}
}

// NormalizarCNPJ strips the display mask, keeping digits only.
func NormalizarCNPJ(cnpj string) string {
	var b strings.Builder
	for _, r := range cnpj {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatarCNPJ renders the canonical mask NN.NNN.NNN/NNNN-NN. Anything that
// is not 14 digits comes back unchanged.
func FormatarCNPJ(cnpj string) string {
	d := NormalizarCNPJ(cnpj)
	if len(d) != 14 {
		return cnpj
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

func (s *empresaService) Criar(ctx context.Context, req dto.SalvarEmpresaRequest) (*dto.EmpresaResponse, error) {
	cnpj := NormalizarCNPJ(req.CNPJ)
	if len(cnpj) != 14 {
		return nil, ErrCNPJInvalido
	}
	if _, err := s.repo.FindByCNPJ(ctx, cnpj); err == nil {
		return nil, ErrCNPJDuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	e := &model.Empresa{
		Nome:      strings.TrimSpace(req.Nome),
		CNPJ:      cnpj,
		Ramos:     req.Ramos,
		Licitacao: req.Licitacao,
		Emendas:   limparEmendas(req.Emendas),
		Ativo:     true,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := EmpresaParaResponse(e)
	return &resp, nil
}

func (s *empresaService) Atualizar(ctx context.Context, id uuid.UUID, req dto.SalvarEmpresaRequest) (*dto.EmpresaResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEmpresaNaoEncontrada
	}

	cnpj := NormalizarCNPJ(req.CNPJ)
	if len(cnpj) != 14 {
		return nil, ErrCNPJInvalido
	}
	if cnpj != e.CNPJ {
		if dup, err := s.repo.FindByCNPJ(ctx, cnpj); err == nil && dup.ID != e.ID {
			return nil, ErrCNPJDuplicado
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	e.Nome = strings.TrimSpace(req.Nome)
	e.CNPJ = cnpj
	e.Ramos = req.Ramos
	e.Licitacao = req.Licitacao
	e.Emendas = limparEmendas(req.Emendas)

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	resp := EmpresaParaResponse(e)
	return &resp, nil
}

func (s *empresaService) Listar(ctx context.Context, busca string) ([]dto.EmpresaResponse, error) {
	empresas, err := s.repo.List(ctx, busca)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpresaResponse, 0, len(empresas))
	for i := range empresas {
		out = append(out, EmpresaParaResponse(&empresas[i]))
	}
	return out, nil
}

func (s *empresaService) Buscar(ctx context.Context, id uuid.UUID) (*dto.EmpresaResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEmpresaNaoEncontrada
	}
	resp := EmpresaParaResponse(e)
	return &resp, nil
}

// Excluir desativa a empresa. Suppliers with open invoices stay: settling or
// removing the pendências first keeps the payable history consistent.
func (s *empresaService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrEmpresaNaoEncontrada
	}
	n, err := s.transacaoRepo.ContarPendentesPorEmpresa(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrPendenciasAbertas
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *empresaService) Pendencias(ctx context.Context, id uuid.UUID) (*dto.EmpresaPendenciasResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEmpresaNaoEncontrada
	}
	pendentes, err := s.transacaoRepo.ListPendentesPorEmpresa(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := &dto.EmpresaPendenciasResponse{
		Empresa:    EmpresaParaResponse(e),
		Pendencias: make([]dto.TransacaoResponse, 0, len(pendentes)),
		Emendas:    append([]string{model.RecursoProprio}, e.Emendas...),
	}
	for i := range pendentes {
		pendentes[i].Empresa = e
		resp.Pendencias = append(resp.Pendencias, TransacaoParaResponse(&pendentes[i]))
	}
	return resp, nil
}

// Extrato assembles the full statement of a supplier for the PDF and XLSX
// exports.
func (s *empresaService) Extrato(ctx context.Context, id uuid.UUID) (*dto.ExtratoEmpresa, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEmpresaNaoEncontrada
	}
	todas, err := s.transacaoRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var proprias []model.Transacao
	for _, t := range todas {
		if t.EmpresaID == id {
			proprias = append(proprias, t)
		}
	}
	OrdenarTransacoes(proprias, OrdenarDataAsc)

	totalEntradas, totalSaidas, emAberto := decimal.Zero, decimal.Zero, decimal.Zero
	out := &dto.ExtratoEmpresa{
		Empresa:    EmpresaParaResponse(e),
		Transacoes: make([]dto.TransacaoResponse, 0, len(proprias)),
		GeradoEm:   time.Now().UTC().Format(time.RFC3339),
	}
	for i := range proprias {
		t := &proprias[i]
		t.Empresa = e
		switch t.Tipo {
		case model.TipoEntrada:
			totalEntradas = totalEntradas.Add(t.Valor)
			if t.Pendente() {
				emAberto = emAberto.Add(t.Valor)
			}
		case model.TipoSaida:
			totalSaidas = totalSaidas.Add(t.Valor)
		}
		out.Transacoes = append(out.Transacoes, TransacaoParaResponse(t))
	}
	out.TotalEntradas = totalEntradas
	out.TotalSaidas = totalSaidas
	out.Saldo = totalEntradas.Sub(totalSaidas)
	out.EmAberto = emAberto
	return out, nil
}

func EmpresaParaResponse(e *model.Empresa) dto.EmpresaResponse {
	return dto.EmpresaResponse{
		ID:        e.ID.String(),
		Nome:      e.Nome,
		CNPJ:      FormatarCNPJ(e.CNPJ),
		Ramos:     e.Ramos,
		Licitacao: e.Licitacao,
		Emendas:   e.Emendas,
		Ativo:     e.Ativo,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

// limparEmendas drops blank labels and duplicates, preserving order.
func limparEmendas(emendas []string) []string {
	seen := make(map[string]struct{}, len(emendas))
	out := make([]string, 0, len(emendas))
	for _, em := range emendas {
		em = strings.TrimSpace(em)
		if em == "" || em == model.RecursoProprio {
			continue
		}
		if _, ok := seen[em]; ok {
			continue
		}
		seen[em] = struct{}{}
		out = append(out, em)
	}
	return out
}
