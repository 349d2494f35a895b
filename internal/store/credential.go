package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type credentialStore struct {
	client *redis.Client
}

func newCredentialStore(client *redis.Client) CredentialStore {
	return &credentialStore{client: client}
}

func (s *credentialStore) Set(ctx context.Context, ownerID, credential string) error {
	if err := s.client.Set(ctx, ownerCredentialKey(ownerID), credential, 0).Err(); err != nil {
		return fmt.Errorf("storing owner credential: %w", err)
	}
	return nil
}

func (s *credentialStore) Get(ctx context.Context, ownerID string) (string, error) {
	credential, err := s.client.Get(ctx, ownerCredentialKey(ownerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("fetching owner credential: %w", err)
	}
	return credential, nil
}
