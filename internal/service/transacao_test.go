package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/model"
	"github.com/brunosousa09/sigh-hospital/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTransacao(t *testing.T) (service.TransacaoService, *stubTransacaoRepo, *model.Empresa) {
	t.Helper()
	empresaRepo := newStubEmpresaRepo()
	transacaoRepo := newStubTransacaoRepo()

	empresa := &model.Empresa{
		Nome:  "Acme Ltda",
		CNPJ:  "12345678000190",
		Ramos: []string{"medicamentos"},
		Ativo: true,
	}
	require.NoError(t, empresaRepo.Create(context.Background(), empresa))

	return service.NewTransacaoService(transacaoRepo, empresaRepo), transacaoRepo, empresa
}

func entradaValida(empresa *model.Empresa) dto.RegistrarEntradaRequest {
	return dto.RegistrarEntradaRequest{
		EmpresaID:   empresa.ID.String(),
		NF:          "NF-001",
		Valor:       decimal.RequireFromString("1500.00"),
		DataEntrada: "2026-01-10",
	}
}

func TestRegistrarEntrada_CriaPendente(t *testing.T) {
	svc, _, empresa := setupTransacao(t)

	resp, err := svc.RegistrarEntrada(context.Background(), entradaValida(empresa))
	require.NoError(t, err)

	assert.Equal(t, "entrada", resp.Tipo)
	assert.Equal(t, model.StatusPendente, resp.Status)
	assert.Equal(t, "Sem descrição", resp.Descricao)
	assert.Equal(t, "geral", resp.Classificacao)
	assert.Equal(t, "Acme Ltda", resp.NomeEmpresa)
	assert.True(t, resp.Valor.Equal(decimal.RequireFromString("1500.00")))
}

func TestRegistrarEntrada_DataFuturaVemPrimeiro(t *testing.T) {
	svc, _, empresa := setupTransacao(t)

	// Even with other required fields missing, the future-date rejection is
	// the first check to fire.
	req := dto.RegistrarEntradaRequest{
		EmpresaID:   empresa.ID.String(),
		DataEntrada: time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02"),
	}
	_, err := svc.RegistrarEntrada(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrDataEntradaFutura)
}

func TestRegistrarEntrada_CamposObrigatorios(t *testing.T) {
	svc, _, empresa := setupTransacao(t)

	casos := []struct {
		nome string
		mod  func(*dto.RegistrarEntradaRequest)
	}{
		{"sem empresa", func(r *dto.RegistrarEntradaRequest) { r.EmpresaID = "" }},
		{"sem nf", func(r *dto.RegistrarEntradaRequest) { r.NF = "" }},
		{"sem data", func(r *dto.RegistrarEntradaRequest) { r.DataEntrada = "" }},
		{"valor zero", func(r *dto.RegistrarEntradaRequest) { r.Valor = decimal.Zero }},
		{"valor negativo", func(r *dto.RegistrarEntradaRequest) { r.Valor = decimal.RequireFromString("-5") }},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			req := entradaValida(empresa)
			c.mod(&req)
			_, err := svc.RegistrarEntrada(context.Background(), req)
			assert.ErrorIs(t, err, service.ErrCamposFaltando)
		})
	}
}

func TestRegistrarEntrada_EmpresaInexistente(t *testing.T) {
	svc, _, empresa := setupTransacao(t)

	req := entradaValida(empresa)
	req.EmpresaID = "0b870aa0-0000-0000-0000-000000000000"

	_, err := svc.RegistrarEntrada(context.Background(), req)
	assert.Error(t, err)
}

func TestAtualizarEntrada(t *testing.T) {
	svc, repo, empresa := setupTransacao(t)

	criada, err := svc.RegistrarEntrada(context.Background(), entradaValida(empresa))
	require.NoError(t, err)

	id := criada.ID
	novoValor := decimal.RequireFromString("1800.00")
	resp, err := svc.AtualizarEntrada(context.Background(), mustUUID(t, id), dto.AtualizarEntradaRequest{
		NF:        "NF-001-B",
		Valor:     &novoValor,
		Descricao: "Reemissão",
	})
	require.NoError(t, err)

	assert.Equal(t, "NF-001-B", *resp.NF)
	assert.True(t, resp.Valor.Equal(novoValor))
	assert.Equal(t, "Reemissão", resp.Descricao)
	// Status untouched by edits.
	assert.Equal(t, model.StatusPendente, resp.Status)

	_ = repo
}

func TestAtualizarEntrada_DataPosteriorAoPagamento(t *testing.T) {
	svc, repo, empresa := setupTransacao(t)

	criada, err := svc.RegistrarEntrada(context.Background(), entradaValida(empresa))
	require.NoError(t, err)

	// Settle the entrada, then try to move its entry date past the payment.
	id := mustUUID(t, criada.ID)
	entrada, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	entrada.Status = model.StatusPago
	entrada.DataPagamento = dia("2026-01-15")
	require.NoError(t, repo.Update(context.Background(), entrada))

	_, err = svc.AtualizarEntrada(context.Background(), id, dto.AtualizarEntradaRequest{
		DataEntrada: "2026-01-20",
	})
	assert.Error(t, err)
}

func TestListarPendenciasEPagamentos(t *testing.T) {
	svc, repo, empresa := setupTransacao(t)

	_, err := svc.RegistrarEntrada(context.Background(), entradaValida(empresa))
	require.NoError(t, err)

	paga := entradaDe(empresa, "NF-009", "50.00", "2026-01-02", model.StatusPago)
	require.NoError(t, repo.Create(context.Background(), nil, &paga))
	baixa := saidaDe(empresa, "[Hospital] quita NF-009", "50.00", "2026-01-03")
	require.NoError(t, repo.Create(context.Background(), nil, &baixa))

	pendencias, err := svc.ListarPendencias(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 1, pendencias.Total)
	assert.Equal(t, "NF-001", *pendencias.Data[0].NF)

	pagamentos, err := svc.ListarPagamentos(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 1, pagamentos.Total)
	assert.Equal(t, "Hospital", pagamentos.Data[0].Classificacao)
}
