// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: rooms/v1/rooms.proto

package roomsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	RoomCatalog_ListRooms_FullMethodName = "/rooms.v1.RoomCatalog/ListRooms"
)

// RoomCatalogClient is the client API for RoomCatalog service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RoomCatalog serves the room list for deployments where the catalog lives
// in a facilities service rather than service config.
type RoomCatalogClient interface {
	ListRooms(ctx context.Context, in *ListRoomsRequest, opts ...grpc.CallOption) (*ListRoomsResponse, error)
}

type roomCatalogClient struct {
	cc grpc.ClientConnInterface
}

func NewRoomCatalogClient(cc grpc.ClientConnInterface) RoomCatalogClient {
	return &roomCatalogClient{cc}
}

func (c *roomCatalogClient) ListRooms(ctx context.Context, in *ListRoomsRequest, opts ...grpc.CallOption) (*ListRoomsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRoomsResponse)
	err := c.cc.Invoke(ctx, RoomCatalog_ListRooms_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RoomCatalogServer is the server API for RoomCatalog service.
// All implementations must embed UnimplementedRoomCatalogServer
// for forward compatibility.
//
// RoomCatalog serves the room list for deployments where the catalog lives
// in a facilities service rather than service config.
type RoomCatalogServer interface {
	ListRooms(context.Context, *ListRoomsRequest) (*ListRoomsResponse, error)
	mustEmbedUnimplementedRoomCatalogServer()
}

// UnimplementedRoomCatalogServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRoomCatalogServer struct{}

func (UnimplementedRoomCatalogServer) ListRooms(context.Context, *ListRoomsRequest) (*ListRoomsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRooms not implemented")
}
func (UnimplementedRoomCatalogServer) mustEmbedUnimplementedRoomCatalogServer() {}
func (UnimplementedRoomCatalogServer) testEmbeddedByValue()                     {}

// UnsafeRoomCatalogServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RoomCatalogServer will
// result in compilation errors.
type UnsafeRoomCatalogServer interface {
	mustEmbedUnimplementedRoomCatalogServer()
}

func RegisterRoomCatalogServer(s grpc.ServiceRegistrar, srv RoomCatalogServer) {
	// If the following call panics, it indicates UnimplementedRoomCatalogServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RoomCatalog_ServiceDesc, srv)
}

func _RoomCatalog_ListRooms_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRoomsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomCatalogServer).ListRooms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoomCatalog_ListRooms_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoomCatalogServer).ListRooms(ctx, req.(*ListRoomsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RoomCatalog_ServiceDesc is the grpc.ServiceDesc for RoomCatalog service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RoomCatalog_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rooms.v1.RoomCatalog",
	HandlerType: (*RoomCatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListRooms",
			Handler:    _RoomCatalog_ListRooms_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rooms/v1/rooms.proto",
}
