package store

import "github.com/redis/go-redis/v9"

type Stores struct {
	client *redis.Client
}

func NewStores(client *redis.Client) *Stores {
	return &Stores{client: client}
}

func (s *Stores) Messages() MessageStore {
	return newMessageStore(s.client)
}

func (s *Stores) Bindings() BindingStore {
	return newBindingStore(s.client)
}

func (s *Stores) Credentials() CredentialStore {
	return newCredentialStore(s.client)
}
