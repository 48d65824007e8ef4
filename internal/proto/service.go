package proto

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "griot.v1.Griot"

// FullMethod returns the "/service/method" path of a Griot method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// GriotServer is the server API for the Griot service.
type GriotServer interface {
	Ping(context.Context, *Empty) (*PingResponse, error)

	CreateUser(context.Context, *CreateUserRequest) (*User, error)
	Authenticate(context.Context, *AuthenticateRequest) (*TokenResponse, error)
	Logout(context.Context, *Empty) (*Empty, error)
	RequestPasswordReset(context.Context, *PasswordResetRequest) (*Empty, error)
	ConfirmPasswordReset(context.Context, *ConfirmPasswordResetRequest) (*Empty, error)

	GetProfile(context.Context, *IDRequest) (*Profile, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*Profile, error)

	CreateAccount(context.Context, *CreateAccountRequest) (*Account, error)
	GetAccount(context.Context, *IDRequest) (*Account, error)
	UpdateAccount(context.Context, *UpdateAccountRequest) (*Account, error)
	DeactivateAccount(context.Context, *IDRequest) (*Empty, error)
	ListAccounts(context.Context, *Empty) (*AccountList, error)
	AddBelovedOne(context.Context, *BelovedOneRequest) (*Account, error)
	RemoveBelovedOne(context.Context, *BelovedOneRequest) (*Account, error)
	ListBelovedOnes(context.Context, *IDRequest) (*ProfileList, error)

	CreateCharacter(context.Context, *CreateCharacterRequest) (*Character, error)
	GetCharacter(context.Context, *IDRequest) (*Character, error)
	UpdateCharacter(context.Context, *UpdateCharacterRequest) (*Character, error)
	DeactivateCharacter(context.Context, *IDRequest) (*Empty, error)

	CreateMemory(context.Context, *CreateMemoryRequest) (*Memory, error)
	GetMemory(context.Context, *IDRequest) (*Memory, error)
	UpdateMemory(context.Context, *UpdateMemoryRequest) (*Memory, error)
	DeactivateMemory(context.Context, *IDRequest) (*Empty, error)
	ListMemories(context.Context, *Empty) (*MemoryList, error)
	AddCharacter(context.Context, *MemoryCharacterRequest) (*Memory, error)
	RemoveCharacter(context.Context, *MemoryCharacterRequest) (*Memory, error)

	CreateVideo(context.Context, *CreateVideoRequest) (*Video, error)
	GetVideo(context.Context, *IDRequest) (*Video, error)
	DeactivateVideo(context.Context, *IDRequest) (*Empty, error)
}

func RegisterGriotServer(s grpc.ServiceRegistrar, srv GriotServer) {
	s.RegisterService(&Griot_ServiceDesc, srv)
}

func unary[Req, Resp any](name string, call func(GriotServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(GriotServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(GriotServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// Griot_ServiceDesc is the grpc.ServiceDesc for the Griot service.
var Griot_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GriotServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Ping", GriotServer.Ping),

		unary("CreateUser", GriotServer.CreateUser),
		unary("Authenticate", GriotServer.Authenticate),
		unary("Logout", GriotServer.Logout),
		unary("RequestPasswordReset", GriotServer.RequestPasswordReset),
		unary("ConfirmPasswordReset", GriotServer.ConfirmPasswordReset),

		unary("GetProfile", GriotServer.GetProfile),
		unary("UpdateProfile", GriotServer.UpdateProfile),

		unary("CreateAccount", GriotServer.CreateAccount),
		unary("GetAccount", GriotServer.GetAccount),
		unary("UpdateAccount", GriotServer.UpdateAccount),
		unary("DeactivateAccount", GriotServer.DeactivateAccount),
		unary("ListAccounts", GriotServer.ListAccounts),
		unary("AddBelovedOne", GriotServer.AddBelovedOne),
		unary("RemoveBelovedOne", GriotServer.RemoveBelovedOne),
		unary("ListBelovedOnes", GriotServer.ListBelovedOnes),

		unary("CreateCharacter", GriotServer.CreateCharacter),
		unary("GetCharacter", GriotServer.GetCharacter),
		unary("UpdateCharacter", GriotServer.UpdateCharacter),
		unary("DeactivateCharacter", GriotServer.DeactivateCharacter),

		unary("CreateMemory", GriotServer.CreateMemory),
		unary("GetMemory", GriotServer.GetMemory),
		unary("UpdateMemory", GriotServer.UpdateMemory),
		unary("DeactivateMemory", GriotServer.DeactivateMemory),
		unary("ListMemories", GriotServer.ListMemories),
		unary("AddCharacter", GriotServer.AddCharacter),
		unary("RemoveCharacter", GriotServer.RemoveCharacter),

		unary("CreateVideo", GriotServer.CreateVideo),
		unary("GetVideo", GriotServer.GetVideo),
		unary("DeactivateVideo", GriotServer.DeactivateVideo),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "griot/v1/griot",
}
