package dto

type CriarNotificacaoRequest struct {
	Titulo   string `json:"titulo" validate:"required"`
	Mensagem string `json:"mensagem" validate:"required"`
	Tipo     string `json:"tipo" validate:"required,oneof=aviso update pendencia"`
	Alvo     string `json:"alvo" validate:"required,oneof=todos dev gestor view"`
}

type NotificacaoResponse struct {
	ID        string `json:"id"`
	Titulo    string `json:"titulo"`
	Mensagem  string `json:"mensagem"`
	Tipo      string `json:"tipo"`
	Alvo      string `json:"alvo"`
	Ativo     bool   `json:"ativo"`
	CreatedAt string `json:"created_at"`
}
