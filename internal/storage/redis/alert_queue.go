package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vietts/insicuri/internal/domain"
	"github.com/vietts/insicuri/pkg/e"
)

// AlertQueue carries Critico notifications from the submission path to
// the webhook sender.
type AlertQueue struct {
	client *redis.Client
	key    string
}

func NewAlertQueue(client *redis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Enqueue(ctx context.Context, payload domain.AlertPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *AlertQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.AlertPayload, error) {
	var p domain.AlertPayload

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrAlertQueueEmpty
		}
		return p, err
	}
	if len(res) < 2 {
		return p, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, err
	}
	return p, nil
}
