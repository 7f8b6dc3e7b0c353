package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/vietts/insicuri/internal/config"
	"github.com/vietts/insicuri/internal/domain"
	"github.com/vietts/insicuri/pkg/e"
)

type AlertSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.AlertPayload, error)
}

// AlertSender drains the Critico queue and delivers each payload to the
// configured webhook with bounded retry. Delivery is best effort; the
// submission that triggered the alert has already committed.
type AlertSender struct {
	logger *slog.Logger
	cfg    config.WebhookConfig
	queue  AlertSource
	http   *http.Client
}

func NewAlertSender(logger *slog.Logger, cfg config.WebhookConfig, queue AlertSource) *AlertSender {
	return &AlertSender{
		logger: logger,
		cfg:    cfg,
		queue:  queue,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *AlertSender) Run(ctx context.Context) {
	if s.cfg.Disabled || s.cfg.URL == "" {
		s.logger.Info("alert sender disabled")
		return
	}
	s.logger.Info("alert sender started", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alert sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrAlertQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.sendWithRetry(ctx, payload)
	}
}

func (s *AlertSender) sendWithRetry(ctx context.Context, p domain.AlertPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal alert payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create alert request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			s.logger.Info("alert delivered", slog.String("spot_id", p.SpotID.String()))
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("alert delivery failed",
			slog.Int("attempt", attempt),
			slog.String("spot_id", p.SpotID.String()),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
