package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CriarUsuarioRequest struct {
	// Username must carry the legacy role suffix (.dev | .gestor | .view);
	// the stored role is derived from it at creation time.
	Username string  `json:"username" validate:"required,min=3"`
	Nome     string  `json:"nome" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=4"`
}

type AtualizarUsuarioRequest struct {
	Nome     string  `json:"nome,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password string  `json:"password,omitempty"`
}

type UsuarioResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Nome     string  `json:"nome"`
	Email    *string `json:"email,omitempty"`
	Rol      string  `json:"rol"`
	Ativo    bool    `json:"ativo"`
}

// PreferenciasUI mirrors what the SPA used to keep in browser local storage:
// sidebar state and the last active tab.
type PreferenciasUI struct {
	SidebarExpandida bool   `json:"sidebar_expandida"`
	AbaAtiva         string `json:"aba_ativa"`
}
