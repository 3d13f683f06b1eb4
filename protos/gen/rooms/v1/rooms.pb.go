// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: rooms/v1/rooms.proto

package roomsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ListRoomsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRoomsRequest) Reset() {
	*x = ListRoomsRequest{}
	mi := &file_rooms_v1_rooms_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRoomsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRoomsRequest) ProtoMessage() {}

func (x *ListRoomsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rooms_v1_rooms_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRoomsRequest.ProtoReflect.Descriptor instead.
func (*ListRoomsRequest) Descriptor() ([]byte, []int) {
	return file_rooms_v1_rooms_proto_rawDescGZIP(), []int{0}
}

type Room struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Capacity      int32                  `protobuf:"varint,4,opt,name=capacity,proto3" json:"capacity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Room) Reset() {
	*x = Room{}
	mi := &file_rooms_v1_rooms_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Room) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Room) ProtoMessage() {}

func (x *Room) ProtoReflect() protoreflect.Message {
	mi := &file_rooms_v1_rooms_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Room.ProtoReflect.Descriptor instead.
func (*Room) Descriptor() ([]byte, []int) {
	return file_rooms_v1_rooms_proto_rawDescGZIP(), []int{1}
}

func (x *Room) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Room) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Room) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Room) GetCapacity() int32 {
	if x != nil {
		return x.Capacity
	}
	return 0
}

type ListRoomsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rooms         []*Room                `protobuf:"bytes,1,rep,name=rooms,proto3" json:"rooms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRoomsResponse) Reset() {
	*x = ListRoomsResponse{}
	mi := &file_rooms_v1_rooms_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRoomsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRoomsResponse) ProtoMessage() {}

func (x *ListRoomsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rooms_v1_rooms_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRoomsResponse.ProtoReflect.Descriptor instead.
func (*ListRoomsResponse) Descriptor() ([]byte, []int) {
	return file_rooms_v1_rooms_proto_rawDescGZIP(), []int{2}
}

func (x *ListRoomsResponse) GetRooms() []*Room {
	if x != nil {
		return x.Rooms
	}
	return nil
}

var File_rooms_v1_rooms_proto protoreflect.FileDescriptor

const file_rooms_v1_rooms_proto_rawDesc = "" +
	"\n" +
	"\x14rooms/v1/rooms.proto\x12\brooms.v1\"\x12\n" +
	"\x10ListRoomsRequest\"h\n" +
	"\x04Room\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1a\n" +
	"\bcapacity\x18\x04 \x01(\x05R\bcapacity\"9\n" +
	"\x11ListRoomsResponse\x12$\n" +
	"\x05rooms\x18\x01 \x03(\v2\x0e.rooms.v1.RoomR\x05rooms2S\n" +
	"\vRoomCatalog\x12D\n" +
	"\tListRooms\x12\x1a.rooms.v1.ListRoomsRequest\x1a\x1b.rooms.v1.ListRoomsResponseBDZBgithub.com/tspi-facilities/roomreserve/protos/gen/rooms/v1;roomsv1b\x06proto3"

var (
	file_rooms_v1_rooms_proto_rawDescOnce sync.Once
	file_rooms_v1_rooms_proto_rawDescData []byte
)

func file_rooms_v1_rooms_proto_rawDescGZIP() []byte {
	file_rooms_v1_rooms_proto_rawDescOnce.Do(func() {
		file_rooms_v1_rooms_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_rooms_v1_rooms_proto_rawDesc), len(file_rooms_v1_rooms_proto_rawDesc)))
	})
	return file_rooms_v1_rooms_proto_rawDescData
}

var file_rooms_v1_rooms_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_rooms_v1_rooms_proto_goTypes = []any{
	(*ListRoomsRequest)(nil),  // 0: rooms.v1.ListRoomsRequest
	(*Room)(nil),              // 1: rooms.v1.Room
	(*ListRoomsResponse)(nil), // 2: rooms.v1.ListRoomsResponse
}
var file_rooms_v1_rooms_proto_depIdxs = []int32{
	1, // 0: rooms.v1.ListRoomsResponse.rooms:type_name -> rooms.v1.Room
	0, // 1: rooms.v1.RoomCatalog.ListRooms:input_type -> rooms.v1.ListRoomsRequest
	2, // 2: rooms.v1.RoomCatalog.ListRooms:output_type -> rooms.v1.ListRoomsResponse
	2, // [2:3] is the sub-list for method output_type
	1, // [1:2] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_rooms_v1_rooms_proto_init() }
func file_rooms_v1_rooms_proto_init() {
	if File_rooms_v1_rooms_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_rooms_v1_rooms_proto_rawDesc), len(file_rooms_v1_rooms_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_rooms_v1_rooms_proto_goTypes,
		DependencyIndexes: file_rooms_v1_rooms_proto_depIdxs,
		MessageInfos:      file_rooms_v1_rooms_proto_msgTypes,
	}.Build()
	File_rooms_v1_rooms_proto = out.File
	file_rooms_v1_rooms_proto_goTypes = nil
	file_rooms_v1_rooms_proto_depIdxs = nil
}
