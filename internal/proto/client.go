package proto

import (
	"context"

	"google.golang.org/grpc"
)

// GriotClient is the client API for the Griot service. Every call is sent
// with the JSON content subtype.
type GriotClient struct {
	cc grpc.ClientConnInterface
}

func NewGriotClient(cc grpc.ClientConnInterface) *GriotClient {
	return &GriotClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *GriotClient) Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, "Ping", in, opts)
}

func (c *GriotClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, "CreateUser", in, opts)
}

func (c *GriotClient) Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, "Authenticate", in, opts)
}

func (c *GriotClient) Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "Logout", in, opts)
}

func (c *GriotClient) RequestPasswordReset(ctx context.Context, in *PasswordResetRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "RequestPasswordReset", in, opts)
}

func (c *GriotClient) ConfirmPasswordReset(ctx context.Context, in *ConfirmPasswordResetRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "ConfirmPasswordReset", in, opts)
}

func (c *GriotClient) GetProfile(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Profile, error) {
	return invoke[Profile](ctx, c.cc, "GetProfile", in, opts)
}

func (c *GriotClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*Profile, error) {
	return invoke[Profile](ctx, c.cc, "UpdateProfile", in, opts)
}

func (c *GriotClient) CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*Account, error) {
	return invoke[Account](ctx, c.cc, "CreateAccount", in, opts)
}

func (c *GriotClient) GetAccount(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Account, error) {
	return invoke[Account](ctx, c.cc, "GetAccount", in, opts)
}

func (c *GriotClient) UpdateAccount(ctx context.Context, in *UpdateAccountRequest, opts ...grpc.CallOption) (*Account, error) {
	return invoke[Account](ctx, c.cc, "UpdateAccount", in, opts)
}

func (c *GriotClient) DeactivateAccount(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DeactivateAccount", in, opts)
}

func (c *GriotClient) ListAccounts(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AccountList, error) {
	return invoke[AccountList](ctx, c.cc, "ListAccounts", in, opts)
}

func (c *GriotClient) AddBelovedOne(ctx context.Context, in *BelovedOneRequest, opts ...grpc.CallOption) (*Account, error) {
	return invoke[Account](ctx, c.cc, "AddBelovedOne", in, opts)
}

func (c *GriotClient) RemoveBelovedOne(ctx context.Context, in *BelovedOneRequest, opts ...grpc.CallOption) (*Account, error) {
	return invoke[Account](ctx, c.cc, "RemoveBelovedOne", in, opts)
}

func (c *GriotClient) ListBelovedOnes(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*ProfileList, error) {
	return invoke[ProfileList](ctx, c.cc, "ListBelovedOnes", in, opts)
}

func (c *GriotClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*Character, error) {
	return invoke[Character](ctx, c.cc, "CreateCharacter", in, opts)
}

func (c *GriotClient) GetCharacter(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Character, error) {
	return invoke[Character](ctx, c.cc, "GetCharacter", in, opts)
}

func (c *GriotClient) UpdateCharacter(ctx context.Context, in *UpdateCharacterRequest, opts ...grpc.CallOption) (*Character, error) {
	return invoke[Character](ctx, c.cc, "UpdateCharacter", in, opts)
}

func (c *GriotClient) DeactivateCharacter(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DeactivateCharacter", in, opts)
}

func (c *GriotClient) CreateMemory(ctx context.Context, in *CreateMemoryRequest, opts ...grpc.CallOption) (*Memory, error) {
	return invoke[Memory](ctx, c.cc, "CreateMemory", in, opts)
}

func (c *GriotClient) GetMemory(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Memory, error) {
	return invoke[Memory](ctx, c.cc, "GetMemory", in, opts)
}

func (c *GriotClient) UpdateMemory(ctx context.Context, in *UpdateMemoryRequest, opts ...grpc.CallOption) (*Memory, error) {
	return invoke[Memory](ctx, c.cc, "UpdateMemory", in, opts)
}

func (c *GriotClient) DeactivateMemory(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DeactivateMemory", in, opts)
}

func (c *GriotClient) ListMemories(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*MemoryList, error) {
	return invoke[MemoryList](ctx, c.cc, "ListMemories", in, opts)
}

func (c *GriotClient) AddCharacter(ctx context.Context, in *MemoryCharacterRequest, opts ...grpc.CallOption) (*Memory, error) {
	return invoke[Memory](ctx, c.cc, "AddCharacter", in, opts)
}

func (c *GriotClient) RemoveCharacter(ctx context.Context, in *MemoryCharacterRequest, opts ...grpc.CallOption) (*Memory, error) {
	return invoke[Memory](ctx, c.cc, "RemoveCharacter", in, opts)
}

func (c *GriotClient) CreateVideo(ctx context.Context, in *CreateVideoRequest, opts ...grpc.CallOption) (*Video, error) {
	return invoke[Video](ctx, c.cc, "CreateVideo", in, opts)
}

func (c *GriotClient) GetVideo(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Video, error) {
	return invoke[Video](ctx, c.cc, "GetVideo", in, opts)
}

func (c *GriotClient) DeactivateVideo(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DeactivateVideo", in, opts)
}
