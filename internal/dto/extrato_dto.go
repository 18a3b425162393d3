package dto

import "github.com/shopspring/decimal"

// ExtratoEmpresa is the per-supplier statement handed to the PDF and XLSX
// renderers: every transaction of the supplier plus its totals.
type ExtratoEmpresa struct {
	Empresa       EmpresaResponse     `json:"empresa"`
	Transacoes    []TransacaoResponse `json:"transacoes"`
	TotalEntradas decimal.Decimal     `json:"total_entradas"`
	TotalSaidas   decimal.Decimal     `json:"total_saidas"`
	Saldo         decimal.Decimal     `json:"saldo"`
	EmAberto      decimal.Decimal     `json:"em_aberto"`
	GeradoEm      string              `json:"gerado_em"`
}
