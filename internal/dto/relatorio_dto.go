package dto

import "github.com/shopspring/decimal"

// KPIResponse is the dashboard summary. Saldo is the historical figure
// (entradas − saidas); EmAberto is the outstanding balance, computed as the
// sum of pending invoice amounts — the two diverge once any invoice is
// edited after a partial payment history, so both are reported.
type KPIResponse struct {
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSaidas   decimal.Decimal `json:"total_saidas"`
	Saldo         decimal.Decimal `json:"saldo"`
	EmAberto      decimal.Decimal `json:"em_aberto"`
	Pendentes     int             `json:"pendentes"`
	Pagamentos    int             `json:"pagamentos"`
}

// ComparativoResponse is the filtered statement screen: matching rows plus
// totals computed over the filtered set only.
type ComparativoResponse struct {
	Transacoes    []TransacaoResponse `json:"transacoes"`
	TotalEntradas decimal.Decimal     `json:"total_entradas"`
	TotalSaidas   decimal.Decimal     `json:"total_saidas"`
	Saldo         decimal.Decimal     `json:"saldo"`
}
