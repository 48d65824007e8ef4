package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/logging"
	"github.com/griotme/griot/internal/server/config"
	gs "github.com/griotme/griot/internal/server/grpc"
	"github.com/griotme/griot/internal/server/models"
	"github.com/griotme/griot/internal/server/notify"
	"github.com/griotme/griot/internal/server/repositories/memory"
	"github.com/griotme/griot/internal/server/services"
	"github.com/griotme/griot/internal/server/storage"
	"github.com/griotme/griot/internal/server/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const pw = "Str0ng!pwd"

func startServer(t *testing.T) func() *GRPCClient {
	t.Helper()

	m := memory.NewRepositoryManager()
	v := validate.New(validate.DefaultMinPasswordLen)
	blobs := storage.NewMemoryStore("griot")
	l := logging.Nop{}
	cfg := &config.Config{SecretKey: "k", ResetTokenValidityDuration: time.Hour, BcryptCost: bcrypt.MinCost}

	srv := gs.NewGRPCServer("bufnet", l, gs.Services{
		Users:      services.NewUserService(m, v, notify.NewLogNotifier(l), cfg, l),
		Profiles:   services.NewProfileService(m, v, l),
		Accounts:   services.NewAccountService(m, v, l),
		Characters: services.NewCharacterService(m, v, l),
		Memories:   services.NewMemoryService(m, v, blobs, l),
		Videos:     services.NewVideoService(m, v, blobs, l),
	})

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return func() *GRPCClient {
		c, err := newGRPCClient("passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		require.NoError(t, err)
		t.Cleanup(func() { _ = c.Close() })
		return c
	}
}

func loggedIn(t *testing.T, newClient func() *GRPCClient, username string) (*GRPCClient, string) {
	t.Helper()
	ctx := context.Background()
	c := newClient()

	u, err := c.Register(ctx, username, username+"@x.com", pw)
	require.NoError(t, err)
	require.NoError(t, c.Login(ctx, username, pw))
	return c, u.ID
}

func TestWithAccessToken_ReplacesExisting(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "old", "x", "y")
	ctx = withAccessToken(ctx, "new")

	md, _ := metadata.FromOutgoingContext(ctx)
	assert.Equal(t, []string{"new"}, md.Get(common.AccessTokenHeaderName))
	assert.Equal(t, []string{"y"}, md.Get("x"))
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		code codes.Code
		want error
	}{
		{codes.Unauthenticated, ErrUnauthorized},
		{codes.PermissionDenied, ErrForbidden},
		{codes.NotFound, ErrNotFound},
		{codes.InvalidArgument, ErrInvalidInput},
		{codes.Unavailable, ErrUnavailable},
		{codes.DeadlineExceeded, ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.ErrorIs(t, c.mapError(status.Error(tt.code, "x")), tt.want)
		})
	}

	assert.NoError(t, c.mapError(nil))
	err := c.mapError(status.Error(codes.Internal, "internal error"))
	assert.EqualError(t, err, "rpc error: rpc error: code = Internal desc = internal error")
}

func TestClient_SessionLifecycle(t *testing.T) {
	newClient := startServer(t)
	ctx := context.Background()
	c := newClient()

	require.NoError(t, c.Ping(ctx))
	assert.False(t, c.LoggedIn())

	_, err := c.ListAccounts(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Register(ctx, "alice", "alice@x.com", pw)
	require.NoError(t, err)
	err = c.Login(ctx, "alice", "wrong-pass1")
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, c.Login(ctx, "alice", pw))
	assert.True(t, c.LoggedIn())

	list, err := c.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Owned)

	require.NoError(t, c.Logout(ctx))
	assert.False(t, c.LoggedIn())
	_, err = c.ListAccounts(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_FamilyFlow(t *testing.T) {
	newClient := startServer(t)
	ctx := context.Background()
	alice, _ := loggedIn(t, newClient, "alice")
	bob, bobID := loggedIn(t, newClient, "bob")

	acc, err := alice.CreateAccount(ctx, "Family")
	require.NoError(t, err)
	_, err = alice.AddBelovedOne(ctx, acc.ID, bobID)
	require.NoError(t, err)

	grandma, err := alice.CreateCharacter(ctx, acc.ID, "Grandma", models.RelationshipFamily)
	require.NoError(t, err)
	mem, err := alice.CreateMemory(ctx, acc.ID, "Summer")
	require.NoError(t, err)
	mem, err = alice.AddCharacter(ctx, mem.ID, grandma.ID)
	require.NoError(t, err)
	require.Len(t, mem.Characters, 1)

	vid, err := alice.CreateVideo(ctx, mem.ID, "beach.mp4", "video/mp4")
	require.NoError(t, err)
	assert.NotEmpty(t, vid.UploadURL)

	mems, err := bob.ListMemories(ctx)
	require.NoError(t, err)
	require.Len(t, mems, 1)
	assert.Len(t, mems[0].Videos, 1)

	_, err = bob.RenameAccount(ctx, acc.ID, "Mine")
	assert.ErrorIs(t, err, ErrForbidden)

	profiles, err := bob.ListBelovedOnes(ctx, acc.ID)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, bobID, profiles[0].UserID)

	require.NoError(t, alice.Deactivate(ctx, models.KindMemory, mem.ID))
	_, err = alice.GetMemory(ctx, mem.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = alice.Deactivate(ctx, models.KindProfile, "x")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
