package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/griotme/griot/internal/common"
	pb "github.com/griotme/griot/internal/proto"
	"github.com/griotme/griot/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      *pb.GriotClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(t string) {
	s.mu.Lock()
	s.accessToken = t
	s.mu.Unlock()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if t := s.token(); t != "" {
		ctx = withAccessToken(ctx, t)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewGriotClientService(endpointURL string) (*GRPCClient, error) {
	return newGRPCClient(endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func newGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append(opts, grpc.WithUnaryInterceptor(c.accessTokenInterceptor))
	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}

	c.conn = conn
	c.client = pb.NewGriotClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) LoggedIn() bool {
	return s.token() != ""
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username, email, password string) (*pb.User, error) {
	u, err := s.client.CreateUser(ctx, &pb.CreateUserRequest{Username: username, Email: email, Password: password})
	return u, s.mapError(err)
}

// Login authenticates and keeps the session token for later calls.
func (s *GRPCClient) Login(ctx context.Context, username, password string) error {

	resp, err := s.client.Authenticate(ctx, &pb.AuthenticateRequest{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	s.setToken(resp.Token)
	return nil
}

// Logout revokes the session on the server and forgets it locally.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if _, err := s.client.Logout(ctx, &pb.Empty{}); err != nil {
		return s.mapError(err)
	}
	s.setToken("")
	return nil
}

func (s *GRPCClient) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := s.client.RequestPasswordReset(ctx, &pb.PasswordResetRequest{Email: email})
	return s.mapError(err)
}

func (s *GRPCClient) GetProfile(ctx context.Context, userID string) (*pb.Profile, error) {
	p, err := s.client.GetProfile(ctx, &pb.IDRequest{ID: userID})
	return p, s.mapError(err)
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (*pb.Profile, error) {
	p, err := s.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{UserID: userID, ProfilePatch: patch})
	return p, s.mapError(err)
}

func (s *GRPCClient) CreateAccount(ctx context.Context, name string) (*pb.Account, error) {
	a, err := s.client.CreateAccount(ctx, &pb.CreateAccountRequest{Name: name})
	return a, s.mapError(err)
}

func (s *GRPCClient) RenameAccount(ctx context.Context, id, name string) (*pb.Account, error) {
	a, err := s.client.UpdateAccount(ctx, &pb.UpdateAccountRequest{ID: id, AccountPatch: models.AccountPatch{Name: &name}})
	return a, s.mapError(err)
}

func (s *GRPCClient) ListAccounts(ctx context.Context) (*pb.AccountList, error) {
	l, err := s.client.ListAccounts(ctx, &pb.Empty{})
	return l, s.mapError(err)
}

func (s *GRPCClient) AddBelovedOne(ctx context.Context, accountID, userID string) (*pb.Account, error) {
	a, err := s.client.AddBelovedOne(ctx, &pb.BelovedOneRequest{AccountID: accountID, UserID: userID})
	return a, s.mapError(err)
}

func (s *GRPCClient) RemoveBelovedOne(ctx context.Context, accountID, userID string) (*pb.Account, error) {
	a, err := s.client.RemoveBelovedOne(ctx, &pb.BelovedOneRequest{AccountID: accountID, UserID: userID})
	return a, s.mapError(err)
}

func (s *GRPCClient) ListBelovedOnes(ctx context.Context, accountID string) ([]*pb.Profile, error) {
	l, err := s.client.ListBelovedOnes(ctx, &pb.IDRequest{ID: accountID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return l.Profiles, nil
}

func (s *GRPCClient) CreateCharacter(ctx context.Context, accountID, name string, rel models.Relationship) (*pb.Character, error) {
	c, err := s.client.CreateCharacter(ctx, &pb.CreateCharacterRequest{AccountID: accountID, Name: name, Relationship: rel})
	return c, s.mapError(err)
}

func (s *GRPCClient) CreateMemory(ctx context.Context, accountID, title string) (*pb.Memory, error) {
	m, err := s.client.CreateMemory(ctx, &pb.CreateMemoryRequest{AccountID: accountID, Title: title})
	return m, s.mapError(err)
}

func (s *GRPCClient) GetMemory(ctx context.Context, id string) (*pb.Memory, error) {
	m, err := s.client.GetMemory(ctx, &pb.IDRequest{ID: id})
	return m, s.mapError(err)
}

func (s *GRPCClient) ListMemories(ctx context.Context) ([]*pb.Memory, error) {
	l, err := s.client.ListMemories(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return l.Memories, nil
}

func (s *GRPCClient) AddCharacter(ctx context.Context, memoryID, characterID string) (*pb.Memory, error) {
	m, err := s.client.AddCharacter(ctx, &pb.MemoryCharacterRequest{MemoryID: memoryID, CharacterID: characterID})
	return m, s.mapError(err)
}

func (s *GRPCClient) RemoveCharacter(ctx context.Context, memoryID, characterID string) (*pb.Memory, error) {
	m, err := s.client.RemoveCharacter(ctx, &pb.MemoryCharacterRequest{MemoryID: memoryID, CharacterID: characterID})
	return m, s.mapError(err)
}

func (s *GRPCClient) CreateVideo(ctx context.Context, memoryID, filename, contentType string) (*pb.Video, error) {
	v, err := s.client.CreateVideo(ctx, &pb.CreateVideoRequest{MemoryID: memoryID, Filename: filename, ContentType: contentType})
	return v, s.mapError(err)
}

func (s *GRPCClient) GetVideo(ctx context.Context, id string) (*pb.Video, error) {
	v, err := s.client.GetVideo(ctx, &pb.IDRequest{ID: id})
	return v, s.mapError(err)
}

// Deactivate soft-deletes a resource of the given kind.
func (s *GRPCClient) Deactivate(ctx context.Context, kind models.Kind, id string) error {
	req := &pb.IDRequest{ID: id}

	var err error
	switch kind {
	case models.KindAccount:
		_, err = s.client.DeactivateAccount(ctx, req)
	case models.KindCharacter:
		_, err = s.client.DeactivateCharacter(ctx, req)
	case models.KindMemory:
		_, err = s.client.DeactivateMemory(ctx, req)
	case models.KindVideo:
		_, err = s.client.DeactivateVideo(ctx, req)
	default:
		return fmt.Errorf("%w: cannot deactivate %q", ErrInvalidInput, kind)
	}
	return s.mapError(err)
}
