package dto

// SalvarEmpresaRequest is shared by create and update.
type SalvarEmpresaRequest struct {
	Nome string `json:"nome" validate:"required"`
	// CNPJ accepts the masked form (NN.NNN.NNN/NNNN-NN) or bare digits;
	// it is normalized and checked for 14 digits in the service.
	CNPJ      string   `json:"cnpj" validate:"required"`
	Ramos     []string `json:"tipo" validate:"required,min=1,dive,required"`
	Licitacao bool     `json:"licitacao"`
	Emendas   []string `json:"emendas"`
}

type EmpresaResponse struct {
	ID        string   `json:"id"`
	Nome      string   `json:"nome"`
	CNPJ      string   `json:"cnpj"`
	Ramos     []string `json:"tipo"`
	Licitacao bool     `json:"licitacao"`
	Emendas   []string `json:"emendas"`
	Ativo     bool     `json:"ativo"`
	CreatedAt string   `json:"created_at"`
}

// EmpresaPendenciasResponse feeds the baixa form after a supplier is chosen:
// the supplier's open invoices plus its earmark labels.
type EmpresaPendenciasResponse struct {
	Empresa    EmpresaResponse     `json:"empresa"`
	Pendencias []TransacaoResponse `json:"pendencias"`
	Emendas    []string            `json:"emendas"`
}
