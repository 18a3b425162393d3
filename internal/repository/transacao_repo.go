package repository

import (
	"context"
	"time"

	"github.com/brunosousa09/sigh-hospital/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransacaoRepository interface {
	// DB exposes the underlying handle so the baixa service can wrap its two
	// writes in a single transaction. Returns nil in unit tests.
	DB() *gorm.DB

	Create(ctx context.Context, tx *gorm.DB, t *model.Transacao) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transacao, error)
	List(ctx context.Context) ([]model.Transacao, error)
	ListPendentesPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]model.Transacao, error)
	ContarPendentesPorEmpresa(ctx context.Context, empresaID uuid.UUID) (int64, error)
	Update(ctx context.Context, t *model.Transacao) error
	// QuitarTx flips a pending entrada to pago inside tx. The WHERE guard on
	// status makes re-settling a no-op at the SQL level as well.
	QuitarTx(tx *gorm.DB, id uuid.UUID, dataPagamento time.Time) error
}

type transacaoRepo struct{ db *gorm.DB }

func NewTransacaoRepository(db *gorm.DB) TransacaoRepository { return &transacaoRepo{db: db} }

func (r *transacaoRepo) DB() *gorm.DB { return r.db }

func (r *transacaoRepo) Create(ctx context.Context, tx *gorm.DB, t *model.Transacao) error {
	if tx == nil {
		tx = r.db.WithContext(ctx)
	}
	return tx.Create(t).Error
}

func (r *transacaoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Transacao, error) {
	var t model.Transacao
	err := r.db.WithContext(ctx).Preload("Empresa").First(&t, "id = ?", id).Error
	return &t, err
}

func (r *transacaoRepo) List(ctx context.Context) ([]model.Transacao, error) {
	var ts []model.Transacao
	err := r.db.WithContext(ctx).Preload("Empresa").Order("created_at").Find(&ts).Error
	return ts, err
}

func (r *transacaoRepo) ListPendentesPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]model.Transacao, error) {
	var ts []model.Transacao
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND tipo = ? AND status = ?", empresaID, model.TipoEntrada, model.StatusPendente).
		Order("data_entrada").
		Find(&ts).Error
	return ts, err
}

func (r *transacaoRepo) ContarPendentesPorEmpresa(ctx context.Context, empresaID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Transacao{}).
		Where("empresa_id = ? AND tipo = ? AND status = ?", empresaID, model.TipoEntrada, model.StatusPendente).
		Count(&n).Error
	return n, err
}

func (r *transacaoRepo) Update(ctx context.Context, t *model.Transacao) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *transacaoRepo) QuitarTx(tx *gorm.DB, id uuid.UUID, dataPagamento time.Time) error {
	if tx == nil {
		tx = r.db
	}
	res := tx.Model(&model.Transacao{}).
		Where("id = ? AND tipo = ? AND status = ?", id, model.TipoEntrada, model.StatusPendente).
		Updates(map[string]interface{}{
			"status":         model.StatusPago,
			"data_pagamento": dataPagamento,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
