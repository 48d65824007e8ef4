package grpc

import (
	"context"
	"time"

	"github.com/griotme/griot/internal/common"
	pb "github.com/griotme/griot/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type ctxKey string

const (
	userIDKey ctxKey = "userID"
	tokenKey  ctxKey = "token"
)

// publicMethods run without a session token.
var publicMethods = map[string]bool{
	pb.FullMethod("Ping"):                 true,
	pb.FullMethod("CreateUser"):           true,
	pb.FullMethod("Authenticate"):         true,
	pb.FullMethod("RequestPasswordReset"): true,
	pb.FullMethod("ConfirmPasswordReset"): true,
}

func accessTokenFromContext(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// UserIDFromContext returns the authenticated user id, or "" on public methods.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func tokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey).(string)
	return t
}

// accessTokenInterceptor resolves the session token against the store on
// every protected call, so a logout is effective for the very next request.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	token := accessTokenFromContext(ctx)
	u, err := s.tokens.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, userIDKey, u.ID)
	ctx = context.WithValue(ctx, tokenKey, token)
	return handler(ctx, req)
}

// loggingInterceptor logs every call and converts service errors into
// gRPC status errors.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	if err == nil {
		s.logger.Debug(ctx, "request served", "method", info.FullMethod, "duration", elapsed)
		return resp, nil
	}

	kind := common.KindOf(err)
	args := []any{"method", info.FullMethod, "duration", elapsed, "kind", kind.String(), "error", err.Error()}
	switch kind {
	case common.KindInternal:
		s.logger.Error(ctx, "request failed", args...)
	case common.KindUnauthenticated:
		s.logger.Warn(ctx, "request rejected", args...)
	default:
		s.logger.Info(ctx, "request rejected", args...)
	}
	return nil, toStatus(err)
}
