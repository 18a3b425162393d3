package dto

// RegistrarBaixaRequest settles a pending invoice: it creates the payment
// (saida) and marks the entrada as paga in a single database transaction.
type RegistrarBaixaRequest struct {
	EmpresaID     string `json:"empresa" validate:"required"`
	EntradaID     string `json:"entrada" validate:"required"`
	DataPagamento string `json:"data_pagamento" validate:"required"` // YYYY-MM-DD
	Setor         string `json:"setor" validate:"required"`
	Motivo        string `json:"motivo" validate:"required"`
	// EmendaOrigem must be one of the supplier's earmark labels when present;
	// empty means own funds ("Recurso Próprio").
	EmendaOrigem string `json:"emenda_origem,omitempty"`
}

type BaixaResponse struct {
	Pagamento TransacaoResponse `json:"pagamento"`
	Entrada   TransacaoResponse `json:"entrada"`
	// Aviso carries non-fatal warnings, e.g. when the settled invoice has no
	// recorded entry date and the date-ordering check had to be skipped.
	Aviso string `json:"aviso,omitempty"`
}
