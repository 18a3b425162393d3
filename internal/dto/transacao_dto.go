package dto

import "github.com/shopspring/decimal"

// RegistrarEntradaRequest creates a new invoice (nota fiscal a pagar).
// Business validation happens in the service in a fixed order, so the struct
// itself only constrains JSON shape.
type RegistrarEntradaRequest struct {
	EmpresaID      string          `json:"empresa"`
	NF             string          `json:"nf"`
	Valor          decimal.Decimal `json:"valor"`
	Descricao      string          `json:"descricao"`
	TipoMaterial   string          `json:"tipo_material"`
	DestinoEntrada string          `json:"destino_entrada"`
	DataEntrada    string          `json:"data_entrada"` // YYYY-MM-DD
}

// AtualizarEntradaRequest edits an existing invoice (NFs screen). Zero values
// mean "leave unchanged"; status is deliberately absent — it only moves
// through the baixa operation.
type AtualizarEntradaRequest struct {
	NF          string           `json:"nf,omitempty"`
	Valor       *decimal.Decimal `json:"valor,omitempty"`
	Descricao   string           `json:"descricao,omitempty"`
	DataEntrada string           `json:"data_entrada,omitempty"`
}

type TransacaoResponse struct {
	ID            string          `json:"id"`
	EmpresaID     string          `json:"empresa"`
	NomeEmpresa   string          `json:"nome_empresa,omitempty"`
	Tipo          string          `json:"tipo"`
	Status        string          `json:"status,omitempty"`
	NF            *string         `json:"nf,omitempty"`
	Descricao     string          `json:"descricao"`
	Valor         decimal.Decimal `json:"valor"`
	Classificacao string          `json:"classificacao"`
	TipoMaterial  *string         `json:"tipo_material,omitempty"`
	Destino       *string         `json:"destino_entrada,omitempty"`
	DataEntrada   string          `json:"data_entrada,omitempty"`
	DataPagamento string          `json:"data_pagamento,omitempty"`
	EmendaOrigem  *string         `json:"emenda_origem,omitempty"`
	EntradaID     *string         `json:"entrada_id,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// TransacaoFiltro holds the list-screen filters. All fields are optional and
// combined as a conjunction.
type TransacaoFiltro struct {
	EmpresaID string `form:"empresa"`
	Tipo      string `form:"tipo"`
	Status    string `form:"status"`
	Mes       string `form:"mes"` // YYYY-MM
	Busca     string `form:"busca"`
	// Ordenar: data_desc (default) | data_asc | valor_desc | empresa_asc
	Ordenar string `form:"ordenar"`
}

type TransacaoListResponse struct {
	Data  []TransacaoResponse `json:"data"`
	Total int                 `json:"total"`
}
