package repository

import (
	"context"
	"strings"

	"github.com/brunosousa09/sigh-hospital/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmpresaRepository interface {
	Create(ctx context.Context, e *model.Empresa) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Empresa, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*model.Empresa, error)
	List(ctx context.Context, busca string) ([]model.Empresa, error)
	Update(ctx context.Context, e *model.Empresa) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type empresaRepo struct{ db *gorm.DB }

func NewEmpresaRepository(db *gorm.DB) EmpresaRepository { return &empresaRepo{db: db} }

func (r *empresaRepo) Create(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empresaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).First(&e, "id = ? AND ativo = true", id).Error
	return &e, err
}

func (r *empresaRepo) FindByCNPJ(ctx context.Context, cnpj string) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).First(&e, "cnpj = ?", cnpj).Error
	return &e, err
}

func (r *empresaRepo) List(ctx context.Context, busca string) ([]model.Empresa, error) {
	q := r.db.WithContext(ctx).Where("ativo = true")
	if busca != "" {
		like := "%" + strings.ToLower(busca) + "%"
		q = q.Where("LOWER(nome) LIKE ? OR cnpj LIKE ?", like, "%"+busca+"%")
	}
	var empresas []model.Empresa
	err := q.Order("nome").Find(&empresas).Error
	return empresas, err
}

func (r *empresaRepo) Update(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *empresaRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Empresa{}).Where("id = ?", id).Update("ativo", false).Error
}
