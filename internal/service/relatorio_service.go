package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/model"
	"github.com/brunosousa09/sigh-hospital/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by the listing screens. DataDesc is the documented
// default everywhere.
const (
	OrdenarDataDesc   = "data_desc"
	OrdenarDataAsc    = "data_asc"
	OrdenarValorDesc  = "valor_desc"
	OrdenarEmpresaAsc = "empresa_asc"
)

type RelatorioService interface {
	KPIs(ctx context.Context) (*dto.KPIResponse, error)
	Comparativo(ctx context.Context, filtro dto.TransacaoFiltro) (*dto.ComparativoResponse, error)
}

type relatorioService struct {
	repo repository.TransacaoRepository
}

func NewRelatorioService(repo repository.TransacaoRepository) RelatorioService {
	return &relatorioService{repo: repo}
}

func (s *relatorioService) KPIs(ctx context.Context) (*dto.KPIResponse, error) {
	ts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	kpis := CalcularKPIs(ts)
	return &kpis, nil
}

func (s *relatorioService) Comparativo(ctx context.Context, filtro dto.TransacaoFiltro) (*dto.ComparativoResponse, error) {
	ts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtradas := FiltrarTransacoes(ts, filtro)
	// Comparativo reads chronologically, oldest first.
	OrdenarTransacoes(filtradas, OrdenarDataAsc)

	resp := &dto.ComparativoResponse{
		Transacoes:    make([]dto.TransacaoResponse, 0, len(filtradas)),
		TotalEntradas: decimal.Zero,
		TotalSaidas:   decimal.Zero,
	}
	for i := range filtradas {
		t := &filtradas[i]
		if t.Tipo == model.TipoEntrada {
			resp.TotalEntradas = resp.TotalEntradas.Add(t.Valor)
		} else {
			resp.TotalSaidas = resp.TotalSaidas.Add(t.Valor)
		}
		resp.Transacoes = append(resp.Transacoes, TransacaoParaResponse(t))
	}
	resp.Saldo = resp.TotalEntradas.Sub(resp.TotalSaidas)
	return resp, nil
}

// ── Pure aggregation helpers ─────────────────────────────────────────────────
// These are synchronous and side-effect free; the listing and dashboard
// endpoints re-run them on every request.

// CalcularKPIs derives the dashboard summary from the full transaction list.
// EmAberto is the sum of pending entrada amounts — deliberately NOT
// TotalEntradas−TotalSaidas, which drifts from the real outstanding balance
// once an invoice is edited after a partial payment history.
func CalcularKPIs(ts []model.Transacao) dto.KPIResponse {
	k := dto.KPIResponse{
		TotalEntradas: decimal.Zero,
		TotalSaidas:   decimal.Zero,
		EmAberto:      decimal.Zero,
	}
	for i := range ts {
		t := &ts[i]
		switch t.Tipo {
		case model.TipoEntrada:
			k.TotalEntradas = k.TotalEntradas.Add(t.Valor)
			if t.Status == model.StatusPendente {
				k.Pendentes++
				k.EmAberto = k.EmAberto.Add(t.Valor)
			}
		case model.TipoSaida:
			k.TotalSaidas = k.TotalSaidas.Add(t.Valor)
			k.Pagamentos++
		}
	}
	k.Saldo = k.TotalEntradas.Sub(k.TotalSaidas)
	return k
}

// FiltrarTransacoes applies the conjunction of the active filters.
func FiltrarTransacoes(ts []model.Transacao, f dto.TransacaoFiltro) []model.Transacao {
	out := make([]model.Transacao, 0, len(ts))
	busca := strings.ToLower(strings.TrimSpace(f.Busca))
	for i := range ts {
		t := &ts[i]
		if f.EmpresaID != "" && f.EmpresaID != "all" && t.EmpresaID.String() != f.EmpresaID {
			continue
		}
		if f.Tipo != "" && f.Tipo != "all" && t.Tipo != f.Tipo {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Mes != "" && dataReferencia(t).Format("2006-01") != f.Mes {
			continue
		}
		if busca != "" && !correspondeBusca(t, busca) {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// correspondeBusca is the free-text search: case-insensitive substring over
// supplier name, document number and status.
func correspondeBusca(t *model.Transacao, busca string) bool {
	if t.Empresa != nil && strings.Contains(strings.ToLower(t.Empresa.Nome), busca) {
		return true
	}
	if t.NF != nil && strings.Contains(strings.ToLower(*t.NF), busca) {
		return true
	}
	return strings.Contains(strings.ToLower(t.Status), busca)
}

// OrdenarTransacoes sorts in place, stably, by the chosen key. Unknown keys
// fall back to the default (date descending).
func OrdenarTransacoes(ts []model.Transacao, chave string) {
	switch chave {
	case OrdenarDataAsc:
		sort.SliceStable(ts, func(i, j int) bool {
			return dataReferencia(&ts[i]).Before(dataReferencia(&ts[j]))
		})
	case OrdenarValorDesc:
		sort.SliceStable(ts, func(i, j int) bool {
			return ts[i].Valor.GreaterThan(ts[j].Valor)
		})
	case OrdenarEmpresaAsc:
		cl := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(ts, func(i, j int) bool {
			return cl.CompareString(nomeEmpresa(&ts[i]), nomeEmpresa(&ts[j])) < 0
		})
	default: // OrdenarDataDesc
		sort.SliceStable(ts, func(i, j int) bool {
			return dataReferencia(&ts[j]).Before(dataReferencia(&ts[i]))
		})
	}
}

// Classificacao is the display grouping of a row: invoices carry their
// material category ("geral" when absent); payments follow the description
// convention "[Setor] motivo" — the bracketed tag is the classification,
// "Diversos" when the convention is not followed.
func Classificacao(t *model.Transacao) string {
	if t.Tipo == model.TipoEntrada {
		if t.TipoMaterial != nil && *t.TipoMaterial != "" {
			return *t.TipoMaterial
		}
		return "geral"
	}
	if strings.HasPrefix(t.Descricao, "[") {
		if fim := strings.Index(t.Descricao, "]"); fim > 1 {
			return t.Descricao[1:fim]
		}
	}
	return "Diversos"
}

// dataReferencia picks the business date of a row: entry date for invoices,
// payment date for payments, creation timestamp as last resort.
func dataReferencia(t *model.Transacao) time.Time {
	if t.Tipo == model.TipoEntrada && t.DataEntrada != nil {
		return *t.DataEntrada
	}
	if t.Tipo == model.TipoSaida && t.DataPagamento != nil {
		return *t.DataPagamento
	}
	return t.CreatedAt
}

func nomeEmpresa(t *model.Transacao) string {
	if t.Empresa != nil {
		return t.Empresa.Nome
	}
	return ""
}

// TransacaoParaResponse maps a model row to its API shape, enriched with the
// supplier name and the derived classification.
func TransacaoParaResponse(t *model.Transacao) dto.TransacaoResponse {
	resp := dto.TransacaoResponse{
		ID:            t.ID.String(),
		EmpresaID:     t.EmpresaID.String(),
		NomeEmpresa:   nomeEmpresa(t),
		Tipo:          t.Tipo,
		NF:            t.NF,
		Descricao:     t.Descricao,
		Valor:         t.Valor,
		Classificacao: Classificacao(t),
		TipoMaterial:  t.TipoMaterial,
		Destino:       t.DestinoEntrada,
		EmendaOrigem:  t.EmendaOrigem,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
	if t.Tipo == model.TipoEntrada {
		resp.Status = t.Status
	}
	if t.DataEntrada != nil {
		resp.DataEntrada = t.DataEntrada.Format("2006-01-02")
	}
	if t.DataPagamento != nil {
		resp.DataPagamento = t.DataPagamento.Format("2006-01-02")
	}
	if t.EntradaID != nil {
		s := t.EntradaID.String()
		resp.EntradaID = &s
	}
	return resp
}
