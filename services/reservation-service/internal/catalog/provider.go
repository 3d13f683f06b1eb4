// Package catalog supplies the room catalog, an external collaborator from
// the booking core's point of view. The default provider is a static list
// (env-overridable); deployments that own rooms elsewhere can point at a
// facilities service over gRPC instead.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
)

type Room struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity,omitempty"`
}

type Provider interface {
	Rooms(ctx context.Context) ([]Room, error)
}

// defaultRooms is the built-in catalog for deployments that do not configure
// their own.
var defaultRooms = []Room{
	{
		ID:          "tspi-east",
		Name:        "TSPI East Conference Room",
		Description: "Main conference room with video conferencing",
		Capacity:    12,
	},
	{
		ID:          "powerchina-east",
		Name:        "East PowerChina Conference Room",
		Description: "Executive meeting space",
		Capacity:    8,
	},
	{
		ID:          "tspi-bess",
		Name:        "TSPI BESS Conference Room",
		Description: "Technical discussion room",
		Capacity:    10,
	},
}

type staticProvider struct {
	rooms []Room
}

// NewStaticProvider builds a provider from a JSON array of rooms, or the
// built-in list when raw is empty.
func NewStaticProvider(raw string) (Provider, error) {
	if raw == "" {
		return &staticProvider{rooms: defaultRooms}, nil
	}
	var rooms []Room
	if err := json.Unmarshal([]byte(raw), &rooms); err != nil {
		return nil, fmt.Errorf("invalid rooms config: %w", err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("rooms config must list at least one room")
	}
	for _, room := range rooms {
		if room.ID == "" || room.Name == "" {
			return nil, fmt.Errorf("rooms config entries need id and name")
		}
	}
	return &staticProvider{rooms: rooms}, nil
}

func (p *staticProvider) Rooms(_ context.Context) ([]Room, error) {
	out := make([]Room, len(p.rooms))
	copy(out, p.rooms)
	return out, nil
}
