package worker

// notificacao_worker.go
// Fans a freshly created aviso out by e-mail to every active user the notice
// targets. Delivery goes through the SMTP circuit breaker so a dead relay
// fails fast instead of stalling the pool.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brunosousa09/sigh-hospital/internal/infra"
	"github.com/brunosousa09/sigh-hospital/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type NotificacaoWorker struct {
	notificacaoRepo repository.NotificacaoRepository
	usuarioRepo     repository.UsuarioRepository
	mailer          *infra.Mailer
	cb              *infra.CircuitBreaker
}

func NewNotificacaoWorker(
	notificacaoRepo repository.NotificacaoRepository,
	usuarioRepo repository.UsuarioRepository,
	mailer *infra.Mailer,
	cb *infra.CircuitBreaker,
) *NotificacaoWorker {
	return &NotificacaoWorker{
		notificacaoRepo: notificacaoRepo,
		usuarioRepo:     usuarioRepo,
		mailer:          mailer,
		cb:              cb,
	}
}

// Process delivers one notice to all targeted users that have an e-mail on
// record. The job errors only when every delivery failed: a retry would
// re-send to users already reached, so partial failures are just logged.
func (w *NotificacaoWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload NotificacaoJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacao_worker: invalid payload")
		return nil // malformed payloads never succeed, don't retry
	}

	id, err := uuid.Parse(payload.NotificacaoID)
	if err != nil {
		log.Error().Str("id", payload.NotificacaoID).Msg("notificacao_worker: invalid id")
		return nil
	}

	n, err := w.notificacaoRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("notificacao_worker: load %s: %w", id, err)
	}

	usuarios, err := w.usuarioRepo.ListAtivosPorAlvo(ctx, n.Alvo)
	if err != nil {
		return fmt.Errorf("notificacao_worker: list targets: %w", err)
	}

	sent, failed := 0, 0
	for i := range usuarios {
		u := &usuarios[i]
		if u.Email == nil || *u.Email == "" {
			continue
		}
		err := w.cb.Execute(func() error {
			return w.mailer.SendAviso(*u.Email, "[SIGH] "+n.Titulo, n.Mensagem)
		})
		if err != nil {
			failed++
			log.Error().Err(err).Str("to", *u.Email).Msg("notificacao_worker: delivery failed")
			continue
		}
		sent++
	}

	log.Info().
		Str("notificacao_id", n.ID.String()).
		Int("sent", sent).
		Int("failed", failed).
		Msg("notificacao_worker: fan-out finished")

	if sent == 0 && failed > 0 {
		return fmt.Errorf("notificacao_worker: all %d deliveries failed", failed)
	}
	return nil
}
