package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/griotme/griot/internal/client/client"
	"github.com/griotme/griot/internal/client/config"
	pb "github.com/griotme/griot/internal/proto"
	"github.com/griotme/griot/internal/server/models"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// api is the part of the gRPC client the CLI drives.
type api interface {
	Close() error
	Ping(ctx context.Context) error
	LoggedIn() bool

	Register(ctx context.Context, username, email, password string) (*pb.User, error)
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error
	GetProfile(ctx context.Context, userID string) (*pb.Profile, error)
	UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (*pb.Profile, error)

	CreateAccount(ctx context.Context, name string) (*pb.Account, error)
	RenameAccount(ctx context.Context, id, name string) (*pb.Account, error)
	ListAccounts(ctx context.Context) (*pb.AccountList, error)
	AddBelovedOne(ctx context.Context, accountID, userID string) (*pb.Account, error)
	RemoveBelovedOne(ctx context.Context, accountID, userID string) (*pb.Account, error)
	ListBelovedOnes(ctx context.Context, accountID string) ([]*pb.Profile, error)

	CreateCharacter(ctx context.Context, accountID, name string, rel models.Relationship) (*pb.Character, error)
	CreateMemory(ctx context.Context, accountID, title string) (*pb.Memory, error)
	GetMemory(ctx context.Context, id string) (*pb.Memory, error)
	ListMemories(ctx context.Context) ([]*pb.Memory, error)
	AddCharacter(ctx context.Context, memoryID, characterID string) (*pb.Memory, error)
	RemoveCharacter(ctx context.Context, memoryID, characterID string) (*pb.Memory, error)
	CreateVideo(ctx context.Context, memoryID, filename, contentType string) (*pb.Video, error)
	GetVideo(ctx context.Context, id string) (*pb.Video, error)
	Deactivate(ctx context.Context, kind models.Kind, id string) error
}

var _ api = (*client.GRPCClient)(nil)

type App struct {
	config   *config.Config
	api      api
	reader   *bufio.Reader
	out      io.Writer
	userName string
	Mode     Mode
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGriotClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.println("Switched to", string(mode), "mode")
	}
}

// Run starts the connectivity watcher and the REPL, and closes the
// connection when the user leaves.
func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.println("Welcome to griot CLI (type 'help' for commands)")
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.api.Ping(ctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
