package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cluey.app/bridge/internal/model"
)

type bindingStore struct {
	client *redis.Client
}

func newBindingStore(client *redis.Client) BindingStore {
	return &bindingStore{client: client}
}

func (s *bindingStore) Bind(ctx context.Context, binding model.Binding) error {
	createdAt := binding.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	// Both directions plus the owner annotation go in one MULTI/EXEC so a
	// concurrent inbound never observes a half-written binding.
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, participantAlertKey(binding.Participant), binding.AlertID, 0)
		pipe.Set(ctx, alertParticipantKey(binding.AlertID), binding.Participant, 0)
		pipe.Set(ctx, participantBoundAtKey(binding.Participant), createdAt.Format(time.RFC3339Nano), 0)
		if binding.OwnerID != "" {
			pipe.Set(ctx, participantOwnerKey(binding.Participant), binding.OwnerID, 0)
		} else {
			pipe.Del(ctx, participantOwnerKey(binding.Participant))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("writing binding: %w", err)
	}

	return nil
}

func (s *bindingStore) ResolveParticipant(ctx context.Context, participant string) (*model.Binding, error) {
	pipe := s.client.Pipeline()
	alertCmd := pipe.Get(ctx, participantAlertKey(participant))
	ownerCmd := pipe.Get(ctx, participantOwnerKey(participant))
	boundAtCmd := pipe.Get(ctx, participantBoundAtKey(participant))

	// Pipeline returns the first error; redis.Nil on the optional keys is
	// expected and handled per command below.
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("resolving participant binding: %w", err)
	}

	alertID, err := alertCmd.Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("resolving participant binding: %w", err)
	}

	binding := &model.Binding{
		AlertID:     alertID,
		Participant: participant,
	}

	if owner, err := ownerCmd.Result(); err == nil {
		binding.OwnerID = owner
	}
	if boundAt, err := boundAtCmd.Result(); err == nil {
		if ts, parseErr := time.Parse(time.RFC3339Nano, boundAt); parseErr == nil {
			binding.CreatedAt = ts
		}
	}

	return binding, nil
}

func (s *bindingStore) ResolveAlert(ctx context.Context, alertID string) (string, error) {
	participant, err := s.client.Get(ctx, alertParticipantKey(alertID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("resolving alert binding: %w", err)
	}
	return participant, nil
}
