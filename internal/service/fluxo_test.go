package service_test

import (
	"context"
	"testing"

	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/model"
	"github.com/brunosousa09/sigh-hospital/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFluxoCompleto walks the whole payable lifecycle through the services:
// cadastro do fornecedor, registro da nota, baixa e conferência dos
// indicadores.
func TestFluxoCompleto(t *testing.T) {
	ctx := context.Background()
	empresaRepo := newStubEmpresaRepo()
	transacaoRepo := newStubTransacaoRepo()

	empresaSvc := service.NewEmpresaService(empresaRepo, transacaoRepo)
	transacaoSvc := service.NewTransacaoService(transacaoRepo, empresaRepo)
	baixaSvc := service.NewBaixaService(transacaoRepo, empresaRepo)
	relatorioSvc := service.NewRelatorioService(transacaoRepo)

	empresa, err := empresaSvc.Criar(ctx, dto.SalvarEmpresaRequest{
		Nome:  "Acme Ltda",
		CNPJ:  "12.345.678/0001-90",
		Ramos: []string{"medicamentos"},
	})
	require.NoError(t, err)

	entrada, err := transacaoSvc.RegistrarEntrada(ctx, dto.RegistrarEntradaRequest{
		EmpresaID:   empresa.ID,
		NF:          "NF-001",
		Valor:       decimal.RequireFromString("1500.00"),
		DataEntrada: "2026-01-10",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPendente, entrada.Status)

	// With the invoice open, the supplier cannot be removed.
	err = empresaSvc.Excluir(ctx, mustUUID(t, empresa.ID))
	assert.ErrorIs(t, err, service.ErrPendenciasAbertas)

	antes, err := relatorioSvc.KPIs(ctx)
	require.NoError(t, err)
	assert.True(t, antes.EmAberto.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, 1, antes.Pendentes)

	baixa, err := baixaSvc.Registrar(ctx, dto.RegistrarBaixaRequest{
		EmpresaID:     empresa.ID,
		EntradaID:     entrada.ID,
		DataPagamento: "2026-01-20",
		Setor:         "Hospital",
		Motivo:        "Quitação de janeiro",
	})
	require.NoError(t, err)
	assert.Equal(t, "[Hospital] Quitação de janeiro", baixa.Pagamento.Descricao)
	assert.Equal(t, model.StatusPago, baixa.Entrada.Status)

	depois, err := relatorioSvc.KPIs(ctx)
	require.NoError(t, err)
	assert.True(t, depois.EmAberto.IsZero())
	assert.True(t, depois.Saldo.IsZero())
	assert.Equal(t, 0, depois.Pendentes)
	assert.Equal(t, 1, depois.Pagamentos)

	// Settled supplier can now be deactivated.
	require.NoError(t, empresaSvc.Excluir(ctx, mustUUID(t, empresa.ID)))

	pendencias, err := transacaoSvc.ListarPendencias(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, pendencias.Total)
}
