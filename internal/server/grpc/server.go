// Package grpc exposes the griot services over gRPC. Handlers translate
// wire messages to service calls; interceptors authenticate the session
// token and turn service errors into status codes.
package grpc

import (
	"context"
	"net"

	"github.com/griotme/griot/internal/logging"
	pb "github.com/griotme/griot/internal/proto"
	"github.com/griotme/griot/internal/server/models"
	"github.com/griotme/griot/internal/server/services"
	"google.golang.org/grpc"
)

// Services bundles the business services the transport dispatches to.
type Services struct {
	Users      *services.UserService
	Profiles   *services.ProfileService
	Accounts   *services.AccountService
	Characters *services.CharacterService
	Memories   *services.MemoryService
	Videos     *services.VideoService
}

type tokenResolver interface {
	ResolveToken(ctx context.Context, key string) (*models.User, error)
}

type GRPCServer struct {
	address string
	logger  logging.Logger
	tokens  tokenResolver

	users      *services.UserService
	profiles   *services.ProfileService
	accounts   *services.AccountService
	characters *services.CharacterService
	memories   *services.MemoryService
	videos     *services.VideoService
}

var _ pb.GriotServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, svc Services) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		tokens:     svc.Users,
		users:      svc.Users,
		profiles:   svc.Profiles,
		accounts:   svc.Accounts,
		characters: svc.Characters,
		memories:   svc.Memories,
		videos:     svc.Videos,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterGriotServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
