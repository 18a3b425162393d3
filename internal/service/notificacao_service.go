package service

import (
	"context"
	"errors"
	"time"

	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/model"
	"github.com/brunosousa09/sigh-hospital/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotificacaoNaoEncontrada = errors.New("notificação não encontrada")

// LeituraStore keeps per-user read receipts. The production implementation
// lives on Redis sets; tests use an in-memory map.
type LeituraStore interface {
	MarcarLida(ctx context.Context, userID, notificacaoID string) error
	Lida(ctx context.Context, userID, notificacaoID string) (bool, error)
}

// NotificacaoDispatcher enqueues the e-mail fan-out job for a freshly created
// notice. Implemented by the worker package.
type NotificacaoDispatcher interface {
	EnqueueNotificacao(ctx context.Context, notificacaoID uuid.UUID) error
}

type NotificacaoService interface {
	Criar(ctx context.Context, req dto.CriarNotificacaoRequest) (*dto.NotificacaoResponse, error)
	Listar(ctx context.Context) ([]dto.NotificacaoResponse, error)
	// ProximaPendente returns the oldest active notice targeted at the user's
	// role that the user has not dismissed yet, or nil when caught up.
	ProximaPendente(ctx context.Context, userID, rol string) (*dto.NotificacaoResponse, error)
	MarcarLida(ctx context.Context, userID string, notificacaoID uuid.UUID) error
	Desativar(ctx context.Context, id uuid.UUID) error
	Excluir(ctx context.Context, id uuid.UUID) error
}

type notificacaoService struct {
	repo       repository.NotificacaoRepository
	leituras   LeituraStore
	dispatcher NotificacaoDispatcher
}

func NewNotificacaoService(repo repository.NotificacaoRepository, leituras LeituraStore, dispatcher NotificacaoDispatcher) NotificacaoService {
	return &notificacaoService{repo: repo, leituras: leituras, dispatcher: dispatcher}
}

func (s *notificacaoService) Criar(ctx context.Context, req dto.CriarNotificacaoRequest) (*dto.NotificacaoResponse, error) {
	n := &model.Notificacao{
		Titulo:   req.Titulo,
		Mensagem: req.Mensagem,
		Tipo:     req.Tipo,
		Alvo:     req.Alvo,
		Ativo:    true,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	// Avisos also go out by e-mail; failures there never fail the creation.
	if n.Tipo == model.NotifAviso && s.dispatcher != nil {
		_ = s.dispatcher.EnqueueNotificacao(ctx, n.ID)
	}
	resp := NotificacaoParaResponse(n)
	return &resp, nil
}

func (s *notificacaoService) Listar(ctx context.Context) ([]dto.NotificacaoResponse, error) {
	ns, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificacaoResponse, 0, len(ns))
	for i := range ns {
		out = append(out, NotificacaoParaResponse(&ns[i]))
	}
	return out, nil
}

func (s *notificacaoService) ProximaPendente(ctx context.Context, userID, rol string) (*dto.NotificacaoResponse, error) {
	ns, err := s.repo.ListAtivas(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ns {
		if !ns[i].Direcionada(rol) {
			continue
		}
		lida, err := s.leituras.Lida(ctx, userID, ns[i].ID.String())
		if err != nil {
			return nil, err
		}
		if lida {
			continue
		}
		resp := NotificacaoParaResponse(&ns[i])
		return &resp, nil
	}
	return nil, nil
}

func (s *notificacaoService) MarcarLida(ctx context.Context, userID string, notificacaoID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, notificacaoID); err != nil {
		return ErrNotificacaoNaoEncontrada
	}
	return s.leituras.MarcarLida(ctx, userID, notificacaoID.String())
}

func (s *notificacaoService) Desativar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotificacaoNaoEncontrada
	}
	return s.repo.Desativar(ctx, id)
}

func (s *notificacaoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotificacaoNaoEncontrada
	}
	return s.repo.Delete(ctx, id)
}

func NotificacaoParaResponse(n *model.Notificacao) dto.NotificacaoResponse {
	return dto.NotificacaoResponse{
		ID:        n.ID.String(),
		Titulo:    n.Titulo,
		Mensagem:  n.Mensagem,
		Tipo:      n.Tipo,
		Alvo:      n.Alvo,
		Ativo:     n.Ativo,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

// redisLeituraStore persists read receipts as one Redis set per user.
type redisLeituraStore struct{ rdb *redis.Client }

func NewRedisLeituraStore(rdb *redis.Client) LeituraStore { return &redisLeituraStore{rdb: rdb} }

func chaveLeituras(userID string) string { return "notif:lidas:" + userID }

func (s *redisLeituraStore) MarcarLida(ctx context.Context, userID, notificacaoID string) error {
	return s.rdb.SAdd(ctx, chaveLeituras(userID), notificacaoID).Err()
}

func (s *redisLeituraStore) Lida(ctx context.Context, userID, notificacaoID string) (bool, error) {
	return s.rdb.SIsMember(ctx, chaveLeituras(userID), notificacaoID).Result()
}
