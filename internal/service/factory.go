package service

import (
	"cluey.app/bridge/internal/service/channel"
	"cluey.app/bridge/internal/service/tracker"
	"cluey.app/bridge/internal/store"
)

type Services struct {
	stores  *store.Stores
	sender  channel.Sender
	tracker tracker.Tracker
	forward bool
}

type ServicesConfig struct {
	Stores  *store.Stores
	Sender  channel.Sender
	Tracker tracker.Tracker
	// Forward enables the best-effort relay of inbound messages to Cluey.
	Forward bool
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		stores:  cfg.Stores,
		sender:  cfg.Sender,
		tracker: cfg.Tracker,
		forward: cfg.Forward,
	}
}

func (s *Services) Incidents() IncidentService {
	return NewIncidentService(s.stores.Bindings(), s.stores.Credentials(), s.stores.Messages())
}

func (s *Services) Relay() RelayService {
	return NewRelayService(s.stores.Bindings(), s.stores.Credentials(), s.stores.Messages(), s.sender, s.tracker, s.forward)
}
