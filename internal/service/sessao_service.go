package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brunosousa09/sigh-hospital/internal/dto"

	"github.com/redis/go-redis/v9"
)

// SessaoService enforces the inactivity logout and keeps per-user UI
// preferences server-side. Each authenticated request refreshes a Redis key
// with a sliding TTL; when the key is gone the session is considered expired
// regardless of the JWT still being valid.
type SessaoService interface {
	Tocar(ctx context.Context, userID string) error
	Ativa(ctx context.Context, userID string) (bool, error)
	Encerrar(ctx context.Context, userID string) error

	SalvarPreferencias(ctx context.Context, userID string, prefs dto.PreferenciasUI) error
	Preferencias(ctx context.Context, userID string) (dto.PreferenciasUI, error)
}

type sessaoService struct {
	rdb  *redis.Client
	idle time.Duration
}

func NewSessaoService(rdb *redis.Client, idleMinutes int) SessaoService {
	return &sessaoService{rdb: rdb, idle: time.Duration(idleMinutes) * time.Minute}
}

func chaveSessao(userID string) string { return "sessao:" + userID }
func chavePrefs(userID string) string  { return "prefs:" + userID }

func (s *sessaoService) Tocar(ctx context.Context, userID string) error {
	return s.rdb.Set(ctx, chaveSessao(userID), time.Now().UTC().Format(time.RFC3339), s.idle).Err()
}

func (s *sessaoService) Ativa(ctx context.Context, userID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, chaveSessao(userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *sessaoService) Encerrar(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, chaveSessao(userID)).Err()
}

func (s *sessaoService) SalvarPreferencias(ctx context.Context, userID string, prefs dto.PreferenciasUI) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("serializando preferências: %w", err)
	}
	return s.rdb.Set(ctx, chavePrefs(userID), raw, 0).Err()
}

func (s *sessaoService) Preferencias(ctx context.Context, userID string) (dto.PreferenciasUI, error) {
	var prefs dto.PreferenciasUI
	raw, err := s.rdb.Get(ctx, chavePrefs(userID)).Bytes()
	if err == redis.Nil {
		return dto.PreferenciasUI{SidebarExpandida: true}, nil
	}
	if err != nil {
		return prefs, err
	}
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return prefs, fmt.Errorf("lendo preferências: %w", err)
	}
	return prefs, nil
}
