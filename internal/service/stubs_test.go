package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/brunosousa09/sigh-hospital/internal/model"
	"github.com/brunosousa09/sigh-hospital/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubTransacaoRepo is an in-memory TransacaoRepository for testing.
type stubTransacaoRepo struct {
	transacoes map[uuid.UUID]*model.Transacao
	ordem      []uuid.UUID
	createErr  error
	quitarErr  error
}

func newStubTransacaoRepo() *stubTransacaoRepo {
	return &stubTransacaoRepo{transacoes: make(map[uuid.UUID]*model.Transacao)}
}

func (r *stubTransacaoRepo) DB() *gorm.DB { return nil }

func (r *stubTransacaoRepo) Create(_ context.Context, _ *gorm.DB, t *model.Transacao) error {
	if r.createErr != nil {
		return r.createErr
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	r.transacoes[t.ID] = t
	r.ordem = append(r.ordem, t.ID)
	return nil
}

func (r *stubTransacaoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Transacao, error) {
	t, ok := r.transacoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTransacaoRepo) List(_ context.Context) ([]model.Transacao, error) {
	out := make([]model.Transacao, 0, len(r.ordem))
	for _, id := range r.ordem {
		out = append(out, *r.transacoes[id])
	}
	return out, nil
}

func (r *stubTransacaoRepo) ListPendentesPorEmpresa(_ context.Context, empresaID uuid.UUID) ([]model.Transacao, error) {
	var out []model.Transacao
	for _, id := range r.ordem {
		t := r.transacoes[id]
		if t.EmpresaID == empresaID && t.Pendente() {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTransacaoRepo) ContarPendentesPorEmpresa(_ context.Context, empresaID uuid.UUID) (int64, error) {
	var n int64
	for _, t := range r.transacoes {
		if t.EmpresaID == empresaID && t.Pendente() {
			n++
		}
	}
	return n, nil
}

func (r *stubTransacaoRepo) Update(_ context.Context, t *model.Transacao) error {
	r.transacoes[t.ID] = t
	return nil
}

func (r *stubTransacaoRepo) QuitarTx(_ *gorm.DB, id uuid.UUID, dataPagamento time.Time) error {
	if r.quitarErr != nil {
		return r.quitarErr
	}
	t, ok := r.transacoes[id]
	if !ok || t.Tipo != model.TipoEntrada || t.Status != model.StatusPendente {
		return gorm.ErrRecordNotFound
	}
	t.Status = model.StatusPago
	t.DataPagamento = &dataPagamento
	return nil
}

var _ repository.TransacaoRepository = (*stubTransacaoRepo)(nil)

// stubEmpresaRepo is an in-memory EmpresaRepository for testing.
type stubEmpresaRepo struct {
	empresas map[uuid.UUID]*model.Empresa
}

func newStubEmpresaRepo() *stubEmpresaRepo {
	return &stubEmpresaRepo{empresas: make(map[uuid.UUID]*model.Empresa)}
}

func (r *stubEmpresaRepo) Create(_ context.Context, e *model.Empresa) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	r.empresas[e.ID] = e
	return nil
}

func (r *stubEmpresaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Empresa, error) {
	e, ok := r.empresas[id]
	if !ok || !e.Ativo {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEmpresaRepo) FindByCNPJ(_ context.Context, cnpj string) (*model.Empresa, error) {
	for _, e := range r.empresas {
		if e.CNPJ == cnpj {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEmpresaRepo) List(_ context.Context, _ string) ([]model.Empresa, error) {
	var out []model.Empresa
	for _, e := range r.empresas {
		if e.Ativo {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEmpresaRepo) Update(_ context.Context, e *model.Empresa) error {
	r.empresas[e.ID] = e
	return nil
}

func (r *stubEmpresaRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if e, ok := r.empresas[id]; ok {
		e.Ativo = false
	}
	return nil
}

var _ repository.EmpresaRepository = (*stubEmpresaRepo)(nil)

// stubUsuarioRepo is an in-memory UsuarioRepository for testing.
type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Ativo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAtivosPorAlvo(_ context.Context, alvo string) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Ativo && (alvo == model.AlvoTodos || u.Rol == alvo) {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Ativo = false
	}
	return nil
}

func (r *stubUsuarioRepo) Reativar(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Ativo = true
	}
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// stubNotificacaoRepo is an in-memory NotificacaoRepository for testing.
type stubNotificacaoRepo struct {
	notificacoes map[uuid.UUID]*model.Notificacao
	ordem        []uuid.UUID
}

func newStubNotificacaoRepo() *stubNotificacaoRepo {
	return &stubNotificacaoRepo{notificacoes: make(map[uuid.UUID]*model.Notificacao)}
}

func (r *stubNotificacaoRepo) Create(_ context.Context, n *model.Notificacao) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	r.notificacoes[n.ID] = n
	r.ordem = append(r.ordem, n.ID)
	return nil
}

func (r *stubNotificacaoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Notificacao, error) {
	n, ok := r.notificacoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return n, nil
}

func (r *stubNotificacaoRepo) List(_ context.Context) ([]model.Notificacao, error) {
	out := make([]model.Notificacao, 0, len(r.ordem))
	for i := len(r.ordem) - 1; i >= 0; i-- {
		out = append(out, *r.notificacoes[r.ordem[i]])
	}
	return out, nil
}

func (r *stubNotificacaoRepo) ListAtivas(_ context.Context) ([]model.Notificacao, error) {
	var out []model.Notificacao
	for _, id := range r.ordem {
		if n := r.notificacoes[id]; n.Ativo {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *stubNotificacaoRepo) Desativar(_ context.Context, id uuid.UUID) error {
	if n, ok := r.notificacoes[id]; ok {
		n.Ativo = false
	}
	return nil
}

func (r *stubNotificacaoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.notificacoes, id)
	for i, v := range r.ordem {
		if v == id {
			r.ordem = append(r.ordem[:i], r.ordem[i+1:]...)
			break
		}
	}
	return nil
}

var _ repository.NotificacaoRepository = (*stubNotificacaoRepo)(nil)

// mapLeituraStore keeps read receipts in memory.
type mapLeituraStore struct {
	lidas map[string]map[string]bool
}

func newMapLeituraStore() *mapLeituraStore {
	return &mapLeituraStore{lidas: make(map[string]map[string]bool)}
}

func (s *mapLeituraStore) MarcarLida(_ context.Context, userID, notificacaoID string) error {
	if s.lidas[userID] == nil {
		s.lidas[userID] = make(map[string]bool)
	}
	s.lidas[userID][notificacaoID] = true
	return nil
}

func (s *mapLeituraStore) Lida(_ context.Context, userID, notificacaoID string) (bool, error) {
	return s.lidas[userID][notificacaoID], nil
}

// recordingDispatcher captures enqueued notification jobs.
type recordingDispatcher struct {
	enfileiradas []uuid.UUID
}

func (d *recordingDispatcher) EnqueueNotificacao(_ context.Context, id uuid.UUID) error {
	d.enfileiradas = append(d.enfileiradas, id)
	return nil
}
