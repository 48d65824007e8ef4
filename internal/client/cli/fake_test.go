package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/griotme/griot/internal/client/config"
	pb "github.com/griotme/griot/internal/proto"
	"github.com/griotme/griot/internal/server/models"
)

// fakeAPI records calls and returns canned responses.
type fakeAPI struct {
	loggedIn bool
	err      error
	pingErr  error
	onPing   func()

	calls []string

	login   [2]string
	rel     models.Relationship
	kind    models.Kind
	patch   models.ProfilePatch
	profile *pb.Profile
	list    *pb.AccountList
	memory  *pb.Memory
	video   *pb.Video
	putURL  string
}

func (f *fakeAPI) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeAPI) Close() error   { f.record("Close"); return nil }
func (f *fakeAPI) LoggedIn() bool { return f.loggedIn }

func (f *fakeAPI) Ping(context.Context) error {
	f.record("Ping")
	if f.onPing != nil {
		f.onPing()
	}
	return f.pingErr
}

func (f *fakeAPI) Register(_ context.Context, username, email, _ string) (*pb.User, error) {
	f.record("Register")
	if f.err != nil {
		return nil, f.err
	}
	return &pb.User{ID: "u1", Username: username, Email: email}, nil
}

func (f *fakeAPI) Login(_ context.Context, username, password string) error {
	f.record("Login")
	f.login = [2]string{username, password}
	if f.err != nil {
		return f.err
	}
	f.loggedIn = true
	return nil
}

func (f *fakeAPI) Logout(context.Context) error {
	f.record("Logout")
	f.loggedIn = false
	return f.err
}

func (f *fakeAPI) RequestPasswordReset(context.Context, string) error {
	f.record("RequestPasswordReset")
	return f.err
}

func (f *fakeAPI) GetProfile(_ context.Context, userID string) (*pb.Profile, error) {
	f.record("GetProfile")
	if f.err != nil {
		return nil, f.err
	}
	if f.profile != nil {
		return f.profile, nil
	}
	return &pb.Profile{UserID: userID, Language: "en", Timezone: "UTC"}, nil
}

func (f *fakeAPI) UpdateProfile(_ context.Context, userID string, patch models.ProfilePatch) (*pb.Profile, error) {
	f.record("UpdateProfile")
	f.patch = patch
	return &pb.Profile{UserID: userID}, f.err
}

func (f *fakeAPI) CreateAccount(_ context.Context, name string) (*pb.Account, error) {
	f.record("CreateAccount")
	if f.err != nil {
		return nil, f.err
	}
	return &pb.Account{ID: "a1", OwnerID: "u1", Name: name}, nil
}

func (f *fakeAPI) RenameAccount(_ context.Context, id, name string) (*pb.Account, error) {
	f.record("RenameAccount")
	if f.err != nil {
		return nil, f.err
	}
	return &pb.Account{ID: id, OwnerID: "u1", Name: name}, nil
}

func (f *fakeAPI) ListAccounts(context.Context) (*pb.AccountList, error) {
	f.record("ListAccounts")
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeAPI) AddBelovedOne(_ context.Context, accountID, userID string) (*pb.Account, error) {
	f.record("AddBelovedOne")
	if f.err != nil {
		return nil, f.err
	}
	return &pb.Account{ID: accountID, BelovedOnes: []string{userID}}, nil
}

func (f *fakeAPI) RemoveBelovedOne(_ context.Context, accountID, _ string) (*pb.Account, error) {
	f.record("RemoveBelovedOne")
	if f.err != nil {
		return nil, f.err
	}
	return &pb.Account{ID: accountID}, nil
}

func (f *fakeAPI) ListBelovedOnes(context.Context, string) ([]*pb.Profile, error) {
	f.record("ListBelovedOnes")
	if f.err != nil {
		return nil, f.err
	}
	return []*pb.Profile{{UserID: "u2", Name: "Bea", LastName: "Lopez"}}, nil
}

func (f *fakeAPI) CreateCharacter(_ context.Context, accountID, name string, rel models.Relationship) (*pb.Character, error) {
	f.record("CreateCharacter")
	f.rel = rel
	if f.err != nil {
		return nil, f.err
	}
	return &pb.Character{ID: "c1", AccountID: accountID, Name: name, Relationship: string(rel)}, nil
}

func (f *fakeAPI) CreateMemory(_ context.Context, accountID, title string) (*pb.Memory, error) {
	f.record("CreateMemory")
	if f.err != nil {
		return nil, f.err
	}
	return &pb.Memory{ID: "m1", AccountID: accountID, Title: title}, nil
}

func (f *fakeAPI) GetMemory(context.Context, string) (*pb.Memory, error) {
	f.record("GetMemory")
	if f.err != nil {
		return nil, f.err
	}
	return f.memory, nil
}

func (f *fakeAPI) ListMemories(context.Context) ([]*pb.Memory, error) {
	f.record("ListMemories")
	if f.err != nil {
		return nil, f.err
	}
	return []*pb.Memory{f.memory}, nil
}

func (f *fakeAPI) AddCharacter(context.Context, string, string) (*pb.Memory, error) {
	f.record("AddCharacter")
	if f.err != nil {
		return nil, f.err
	}
	return f.memory, nil
}

func (f *fakeAPI) RemoveCharacter(context.Context, string, string) (*pb.Memory, error) {
	f.record("RemoveCharacter")
	if f.err != nil {
		return nil, f.err
	}
	return f.memory, nil
}

func (f *fakeAPI) CreateVideo(_ context.Context, memoryID, filename, contentType string) (*pb.Video, error) {
	f.record("CreateVideo")
	if f.err != nil {
		return nil, f.err
	}
	url := f.putURL
	if url == "" {
		url = "memory://videos/videos/v1?op=put"
	}
	return &pb.Video{ID: "v1", MemoryID: memoryID, Filename: filename, ContentType: contentType, UploadURL: url}, nil
}

func (f *fakeAPI) GetVideo(context.Context, string) (*pb.Video, error) {
	f.record("GetVideo")
	if f.err != nil {
		return nil, f.err
	}
	return f.video, nil
}

func (f *fakeAPI) Deactivate(_ context.Context, kind models.Kind, _ string) error {
	f.record("Deactivate")
	f.kind = kind
	return f.err
}

// newTestApp builds an App reading input and writing into the returned buffer.
// Password prompts answer with password.
func newTestApp(t *testing.T, f *fakeAPI, input, password string) (*App, *bytes.Buffer) {
	t.Helper()

	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { getPassword = orig })

	out := &bytes.Buffer{}
	a := &App{
		config: &config.Config{RequestTimeout: time.Second, OnlineCheckInterval: time.Hour},
		api:    f,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}
	return a, out
}
