package battle

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "npcarena.game.v1.BattleService"

// Full method names.
const (
	SimulateFullMethodName = "/" + ServiceName + "/Simulate"
	ListNpcsFullMethodName = "/" + ServiceName + "/ListNpcs"
)

// BattleServiceServer is the server API for BattleService.
type BattleServiceServer interface {
	Simulate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListNpcs(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterBattleServiceServer registers srv on s.
func RegisterBattleServiceServer(s grpc.ServiceRegistrar, srv BattleServiceServer) {
	s.RegisterService(&BattleServiceDesc, srv)
}

// BattleServiceDesc describes BattleService for grpc.ServiceRegistrar.
var BattleServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BattleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Simulate", Handler: simulateHandler},
		{MethodName: "ListNpcs", Handler: listNpcsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "npcarena/game/v1/battle.proto",
}

func simulateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).Simulate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SimulateFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BattleServiceServer).Simulate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func listNpcsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).ListNpcs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListNpcsFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BattleServiceServer).ListNpcs(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
