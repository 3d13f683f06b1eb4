//go:build protogen

package catalog

import (
	"context"
	"time"

	"github.com/tspi-facilities/roomreserve/libs/grpcx"
	roomsv1 "github.com/tspi-facilities/roomreserve/protos/gen/rooms/v1"
)

type grpcProvider struct {
	client roomsv1.RoomCatalogClient
}

// NewRemoteProvider dials a facilities service that owns the room catalog.
// Returns (nil, nil) when no address is configured so callers fall back to
// the static provider.
func NewRemoteProvider(addr string) (Provider, error) {
	if addr == "" {
		return nil, nil
	}
	conn, err := grpcx.Dial(context.Background(), addr, grpcx.DialOptions{Timeout: 3 * time.Second})
	if err != nil {
		return nil, err
	}
	return &grpcProvider{client: roomsv1.NewRoomCatalogClient(conn)}, nil
}

func (p *grpcProvider) Rooms(ctx context.Context) ([]Room, error) {
	resp, err := p.client.ListRooms(ctx, &roomsv1.ListRoomsRequest{})
	if err != nil {
		return nil, err
	}
	rooms := make([]Room, 0, len(resp.GetRooms()))
	for _, r := range resp.GetRooms() {
		if r.GetId() == "" {
			continue
		}
		rooms = append(rooms, Room{
			ID:          r.GetId(),
			Name:        r.GetName(),
			Description: r.GetDescription(),
			Capacity:    int(r.GetCapacity()),
		})
	}
	return rooms, nil
}
