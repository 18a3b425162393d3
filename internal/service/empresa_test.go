package service_test

import (
	"context"
	"testing"

	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/model"
	"github.com/brunosousa09/sigh-hospital/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEmpresa(t *testing.T) (service.EmpresaService, *stubEmpresaRepo, *stubTransacaoRepo) {
	t.Helper()
	empresaRepo := newStubEmpresaRepo()
	transacaoRepo := newStubTransacaoRepo()
	return service.NewEmpresaService(empresaRepo, transacaoRepo), empresaRepo, transacaoRepo
}

func salvarReq() dto.SalvarEmpresaRequest {
	return dto.SalvarEmpresaRequest{
		Nome:  "Acme Ltda",
		CNPJ:  "12.345.678/0001-90",
		Ramos: []string{"medicamentos"},
	}
}

func TestCriarEmpresa_NormalizaCNPJ(t *testing.T) {
	svc, _, _ := setupEmpresa(t)

	resp, err := svc.Criar(context.Background(), salvarReq())
	require.NoError(t, err)

	// Stored bare, rendered masked.
	assert.Equal(t, "12.345.678/0001-90", resp.CNPJ)
	assert.True(t, resp.Ativo)
}

func TestCriarEmpresa_CNPJInvalido(t *testing.T) {
	svc, _, _ := setupEmpresa(t)

	req := salvarReq()
	req.CNPJ = "123456"

	_, err := svc.Criar(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrCNPJInvalido)
}

func TestCriarEmpresa_CNPJDuplicado(t *testing.T) {
	svc, _, _ := setupEmpresa(t)

	_, err := svc.Criar(context.Background(), salvarReq())
	require.NoError(t, err)

	// Same digits under a different mask still collide.
	req := salvarReq()
	req.Nome = "Acme Filial"
	req.CNPJ = "12345678000190"

	_, err = svc.Criar(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrCNPJDuplicado)
}

func TestExcluirEmpresa_ComPendenciasBloqueia(t *testing.T) {
	svc, _, transacaoRepo := setupEmpresa(t)

	criada, err := svc.Criar(context.Background(), salvarReq())
	require.NoError(t, err)
	id := mustUUID(t, criada.ID)

	e := &model.Empresa{ID: id, Nome: criada.Nome}
	pendente := entradaDe(e, "NF-1", "100.00", "2026-01-05", model.StatusPendente)
	require.NoError(t, transacaoRepo.Create(context.Background(), nil, &pendente))

	err = svc.Excluir(context.Background(), id)
	assert.ErrorIs(t, err, service.ErrPendenciasAbertas)

	// Settle it: deletion now goes through as a soft delete.
	require.NoError(t, transacaoRepo.QuitarTx(nil, pendente.ID, *dia("2026-01-10")))
	require.NoError(t, svc.Excluir(context.Background(), id))

	_, err = svc.Buscar(context.Background(), id)
	assert.ErrorIs(t, err, service.ErrEmpresaNaoEncontrada)
}

func TestPendencias_IncluiRecursoProprio(t *testing.T) {
	svc, empresaRepo, transacaoRepo := setupEmpresa(t)

	empresa := &model.Empresa{
		Nome:    "Beta Farma",
		CNPJ:    "98765432000121",
		Ramos:   []string{"insumos"},
		Emendas: []string{"Emenda 2025/07"},
		Ativo:   true,
	}
	require.NoError(t, empresaRepo.Create(context.Background(), empresa))

	pendente := entradaDe(empresa, "NF-5", "250.00", "2026-02-01", model.StatusPendente)
	require.NoError(t, transacaoRepo.Create(context.Background(), nil, &pendente))
	paga := entradaDe(empresa, "NF-6", "90.00", "2026-02-02", model.StatusPago)
	require.NoError(t, transacaoRepo.Create(context.Background(), nil, &paga))

	resp, err := svc.Pendencias(context.Background(), empresa.ID)
	require.NoError(t, err)

	require.Len(t, resp.Pendencias, 1)
	assert.Equal(t, "NF-5", *resp.Pendencias[0].NF)
	// Own funds always lead the earmark options.
	assert.Equal(t, []string{model.RecursoProprio, "Emenda 2025/07"}, resp.Emendas)
}

func TestExtrato_TotaisPorEmpresa(t *testing.T) {
	svc, empresaRepo, transacaoRepo := setupEmpresa(t)

	empresa := &model.Empresa{Nome: "Acme", CNPJ: "12345678000190", Ativo: true}
	outra := &model.Empresa{Nome: "Outra", CNPJ: "98765432000121", Ativo: true}
	require.NoError(t, empresaRepo.Create(context.Background(), empresa))
	require.NoError(t, empresaRepo.Create(context.Background(), outra))

	mine1 := entradaDe(empresa, "NF-1", "1000.00", "2026-01-05", model.StatusPago)
	mine2 := entradaDe(empresa, "NF-2", "300.00", "2026-01-08", model.StatusPendente)
	mineS := saidaDe(empresa, "[Hospital] quita NF-1", "1000.00", "2026-01-20")
	alheia := entradaDe(outra, "NF-9", "999.00", "2026-01-06", model.StatusPendente)
	for _, tr := range []model.Transacao{mine1, mine2, mineS, alheia} {
		cp := tr
		require.NoError(t, transacaoRepo.Create(context.Background(), nil, &cp))
	}

	extrato, err := svc.Extrato(context.Background(), empresa.ID)
	require.NoError(t, err)

	assert.Len(t, extrato.Transacoes, 3)
	assert.True(t, extrato.TotalEntradas.Equal(valor("1300.00")))
	assert.True(t, extrato.TotalSaidas.Equal(valor("1000.00")))
	assert.True(t, extrato.Saldo.Equal(valor("300.00")))
	assert.True(t, extrato.EmAberto.Equal(valor("300.00")))
}

func TestFormatarCNPJ(t *testing.T) {
	assert.Equal(t, "12.345.678/0001-90", service.FormatarCNPJ("12345678000190"))
	assert.Equal(t, "12.345.678/0001-90", service.FormatarCNPJ("12.345.678/0001-90"))
	// Anything that is not 14 digits passes through untouched.
	assert.Equal(t, "123", service.FormatarCNPJ("123"))
}
