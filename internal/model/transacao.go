package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipo: "entrada" (nota fiscal a pagar) | "saida" (baixa/pagamento)
// Status: "pendente" | "pago" — only meaningful for entradas; the transition
// is one-way, pendente → pago, performed exclusively by the baixa operation.
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"

	StatusPendente = "pendente"
	StatusPago     = "pago"
)

// RecursoProprio is the funding-source label used when a payment is not tied
// to any earmark (emenda) of the supplier.
const RecursoProprio = "Recurso Próprio"

// Transacao stores both kinds of financial records in a single collection,
// discriminated by Tipo. Entrada-only fields: Status, TipoMaterial,
// DestinoEntrada, DataEntrada. Saida-only fields: EmendaOrigem, EntradaID.
type Transacao struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID uuid.UUID `gorm:"type:uuid;index;not null"`
	Tipo      string    `gorm:"type:varchar(10);not null"`
	Status    string    `gorm:"type:varchar(10);not null;default:'pendente'"`
	NF        *string   `gorm:"column:nf;type:varchar(50)"`
	Descricao string
	Valor     decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	TipoMaterial   *string    `gorm:"type:varchar(50)"`
	DestinoEntrada *string    `gorm:"type:varchar(50)"`
	DataEntrada    *time.Time `gorm:"type:date"`

	EmendaOrigem *string `gorm:"type:varchar(200)"`
	// EntradaID links a saida to the entrada it settled. The original system
	// expressed this only by flipping the entrada's status; the explicit
	// reference removes the ambiguity.
	EntradaID     *uuid.UUID `gorm:"type:uuid;index"`
	DataPagamento *time.Time `gorm:"type:date"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Empresa *Empresa `gorm:"foreignKey:EmpresaID"`
}

// TableName overrides GORM's default pluralization.
func (Transacao) TableName() string { return "transacoes" }

// Pendente reports whether this is an entrada still awaiting payment.
func (t *Transacao) Pendente() bool {
	return t.Tipo == TipoEntrada && t.Status == StatusPendente
}
