package repository

import (
	"context"

	"github.com/brunosousa09/sigh-hospital/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificacaoRepository interface {
	Create(ctx context.Context, n *model.Notificacao) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Notificacao, error)
	List(ctx context.Context) ([]model.Notificacao, error)
	ListAtivas(ctx context.Context) ([]model.Notificacao, error)
	Desativar(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type notificacaoRepo struct{ db *gorm.DB }

func NewNotificacaoRepository(db *gorm.DB) NotificacaoRepository { return &notificacaoRepo{db: db} }

func (r *notificacaoRepo) Create(ctx context.Context, n *model.Notificacao) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificacaoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Notificacao, error) {
	var n model.Notificacao
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	return &n, err
}

func (r *notificacaoRepo) List(ctx context.Context) ([]model.Notificacao, error) {
	var ns []model.Notificacao
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ns).Error
	return ns, err
}

// ListAtivas returns active notifications oldest-first: the consumer surfaces
// them one at a time in publication order.
func (r *notificacaoRepo) ListAtivas(ctx context.Context) ([]model.Notificacao, error) {
	var ns []model.Notificacao
	err := r.db.WithContext(ctx).Where("ativo = true").Order("created_at").Find(&ns).Error
	return ns, err
}

func (r *notificacaoRepo) Desativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Notificacao{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *notificacaoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Notificacao{}, "id = ?", id).Error
}
