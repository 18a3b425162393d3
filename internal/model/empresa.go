package model

import (
	"time"

	"github.com/google/uuid"
)

// Empresa represents a supplier (fornecedor) registered with the hospital.
// Ramos are the supplier's activity categories (e.g. Medicamentos,
// Equipamentos); Emendas are named earmarked-fund labels that can be chosen
// as the origin of a payment's funds.
type Empresa struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	CNPJ      string    `gorm:"column:cnpj;uniqueIndex;not null"`
	Ramos     []string  `gorm:"serializer:json;not null"`
	Licitacao bool      `gorm:"not null;default:false"`
	Emendas   []string  `gorm:"serializer:json"`
	Ativo     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Transacoes []Transacao `gorm:"foreignKey:EmpresaID"`
}

func (Empresa) TableName() string { return "empresas" }

// TemEmenda reports whether rotulo is one of the supplier's earmark labels.
func (e *Empresa) TemEmenda(rotulo string) bool {
	for _, em := range e.Emendas {
		if em == rotulo {
			return true
		}
	}
	return false
}
