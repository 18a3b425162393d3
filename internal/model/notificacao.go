package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipo: "aviso" (crítico) | "update" | "pendencia" (informativo)
// Alvo: "todos" | a specific role ("dev" | "gestor" | "view")
const (
	NotifAviso     = "aviso"
	NotifUpdate    = "update"
	NotifPendencia = "pendencia"

	AlvoTodos = "todos"
)

// Notificacao is a broadcast system message. Per-user read state is NOT part
// of the entity — it lives in Redis, keyed by user (see service.LeituraStore).
type Notificacao struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Titulo    string    `gorm:"not null"`
	Mensagem  string    `gorm:"not null"`
	Tipo      string    `gorm:"type:varchar(20);not null"`
	Alvo      string    `gorm:"type:varchar(10);not null;default:'todos'"`
	Ativo     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (Notificacao) TableName() string { return "notificacoes" }

// Direcionada reports whether the notification targets the given role.
func (n *Notificacao) Direcionada(rol string) bool {
	return n.Alvo == AlvoTodos || n.Alvo == rol
}
