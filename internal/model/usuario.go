package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Rol: "dev" | "gestor" | "view"
// The username carries the role as a dotted suffix (joao.gestor) — a legacy
// convention kept at creation time for compatibility. Authorization always
// reads the Rol column (issued as a JWT claim), never the suffix.
const (
	RolDev    = "dev"
	RolGestor = "gestor"
	RolView   = "view"
)

// Usuario stores system users with role-based access.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Nome         string    `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Rol          string `gorm:"type:varchar(10);not null"`
	Ativo        bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RolDoUsername extracts the role suffix from a username ("ana.dev" → "dev").
// Returns "" when the suffix is not one of the known roles.
func RolDoUsername(username string) string {
	i := strings.LastIndex(username, ".")
	if i < 0 {
		return ""
	}
	switch rol := username[i+1:]; rol {
	case RolDev, RolGestor, RolView:
		return rol
	default:
		return ""
	}
}
