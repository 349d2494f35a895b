package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"cluey.app/bridge/internal/model"
)

type messageStore struct {
	client *redis.Client
}

func newMessageStore(client *redis.Client) MessageStore {
	return &messageStore{client: client}
}

func (s *messageStore) Append(ctx context.Context, alertID string, record model.MessageRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding message record: %w", err)
	}

	// RPUSH is atomic per key, which makes Redis the serialization point
	// for concurrent appends to the same alert.
	if err := s.client.RPush(ctx, messagesKey(alertID), payload).Err(); err != nil {
		return fmt.Errorf("appending message record: %w", err)
	}

	return nil
}

func (s *messageStore) List(ctx context.Context, alertID string) ([]model.MessageRecord, error) {
	raw, err := s.client.LRange(ctx, messagesKey(alertID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("listing message records: %w", err)
	}

	records := make([]model.MessageRecord, 0, len(raw))
	for _, item := range raw {
		var record model.MessageRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("decoding message record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}
