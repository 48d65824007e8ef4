package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/netx"
	pb "github.com/griotme/griot/internal/proto"
	"github.com/griotme/griot/internal/server/models"
)

// getSimpleText and getPassword can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) promptPassword() (string, error) {
	pw, err := getPassword(a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

func (a *App) register(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.promptPassword()
	if err != nil {
		return err
	}

	u, err := a.api.Register(ctx, username, email, password)
	if err != nil {
		return err
	}

	a.println("Registered", u.Username, "id="+u.ID)
	return nil
}

func (a *App) login(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := a.promptPassword()
	if err != nil {
		return err
	}

	if err := a.api.Login(ctx, username, password); err != nil {
		return err
	}

	a.userName = strings.ToLower(username)
	a.println("Login successful")
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	a.println("Logged out")
	return nil
}

func (a *App) reset(ctx context.Context, args []string) error {
	if err := a.api.RequestPasswordReset(ctx, args[0]); err != nil {
		return err
	}
	a.println("If the address is registered, a reset link is on its way")
	return nil
}

func (a *App) profile(ctx context.Context, args []string) error {
	p, err := a.api.GetProfile(ctx, args[0])
	if err != nil {
		return err
	}
	name := strings.TrimSpace(strings.Join([]string{p.Name, p.MiddleName, p.LastName}, " "))
	a.println(fmt.Sprintf("%s  %q  lang=%s  tz=%s", p.UserID, name, p.Language, p.Timezone))
	return nil
}

func (a *App) setProfile(ctx context.Context, args []string) error {
	value := strings.Join(args[2:], " ")

	var patch models.ProfilePatch
	switch args[1] {
	case "name":
		patch.Name = &value
	case "middle_name":
		patch.MiddleName = &value
	case "last_name":
		patch.LastName = &value
	case "birth_date":
		patch.BirthDate = &value
	case "gender":
		g := models.Gender(value)
		patch.Gender = &g
	case "language":
		l := models.Language(value)
		patch.Language = &l
	case "timezone":
		patch.Timezone = &value
	case "picture":
		patch.Picture = &value
	default:
		return fmt.Errorf("unknown profile field %q", args[1])
	}

	if _, err := a.api.UpdateProfile(ctx, args[0], patch); err != nil {
		return err
	}
	return a.profile(ctx, args[:1])
}

func (a *App) printAccount(acc *pb.Account) {
	a.println(fmt.Sprintf("%s  %q  owner=%s  beloved=%d", acc.ID, acc.Name, acc.OwnerID, len(acc.BelovedOnes)))
}

func (a *App) accounts(ctx context.Context, _ []string) error {
	list, err := a.api.ListAccounts(ctx)
	if err != nil {
		return err
	}

	a.println("Owned:")
	for _, acc := range list.Owned {
		a.printAccount(acc)
	}
	a.println("Beloved:")
	for _, acc := range list.Beloved {
		a.printAccount(acc)
	}
	return nil
}

func (a *App) newAccount(ctx context.Context, args []string) error {
	acc, err := a.api.CreateAccount(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.printAccount(acc)
	return nil
}

func (a *App) rename(ctx context.Context, args []string) error {
	acc, err := a.api.RenameAccount(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	a.printAccount(acc)
	return nil
}

func (a *App) invite(ctx context.Context, args []string) error {
	acc, err := a.api.AddBelovedOne(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	a.printAccount(acc)
	return nil
}

func (a *App) uninvite(ctx context.Context, args []string) error {
	acc, err := a.api.RemoveBelovedOne(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	a.printAccount(acc)
	return nil
}

func (a *App) beloved(ctx context.Context, args []string) error {
	list, err := a.api.ListBelovedOnes(ctx, args[0])
	if err != nil {
		return err
	}
	for _, p := range list {
		a.println(fmt.Sprintf("%s  %s %s", p.UserID, p.Name, p.LastName))
	}
	return nil
}

func (a *App) newCharacter(ctx context.Context, args []string) error {
	var rel models.Relationship
	if args[1] != "-" {
		rel = models.Relationship(args[1])
	}

	c, err := a.api.CreateCharacter(ctx, args[0], strings.Join(args[2:], " "), rel)
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("%s  %q  %s", c.ID, c.Name, c.Relationship))
	return nil
}

func (a *App) printMemory(m *pb.Memory) {
	a.println(fmt.Sprintf("%s  %q  account=%s  characters=%d  videos=%d",
		m.ID, m.Title, m.AccountID, len(m.Characters), len(m.Videos)))
}

func (a *App) newMemory(ctx context.Context, args []string) error {
	m, err := a.api.CreateMemory(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	a.printMemory(m)
	return nil
}

func (a *App) memories(ctx context.Context, _ []string) error {
	list, err := a.api.ListMemories(ctx)
	if err != nil {
		return err
	}
	for _, m := range list {
		a.printMemory(m)
	}
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	m, err := a.api.GetMemory(ctx, args[0])
	if err != nil {
		return err
	}

	a.printMemory(m)
	for _, c := range m.Characters {
		a.println(fmt.Sprintf("  character %s  %q", c.ID, c.Name))
	}
	for _, v := range m.Videos {
		a.println(fmt.Sprintf("  video %s  %s  %s", v.ID, v.Filename, v.URL))
	}
	return nil
}

func (a *App) link(ctx context.Context, args []string) error {
	m, err := a.api.AddCharacter(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	a.printMemory(m)
	return nil
}

func (a *App) unlink(ctx context.Context, args []string) error {
	m, err := a.api.RemoveCharacter(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	a.printMemory(m)
	return nil
}

func (a *App) upload(ctx context.Context, args []string) error {
	path := args[1]
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if len(args) > 2 {
		contentType = args[2]
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	v, err := a.api.CreateVideo(ctx, args[0], filepath.Base(path), contentType)
	if err != nil {
		return err
	}

	if !netx.Transferable(v.UploadURL) {
		a.println("Video", v.ID, "created. Upload the file with an HTTP PUT to:")
		a.println(v.UploadURL)
		return nil
	}

	if err := netx.PutPresigned(ctx, nil, v.UploadURL, v.ContentType, f); err != nil {
		return fmt.Errorf("video %s created but upload failed: %w", v.ID, err)
	}
	a.println("Video", v.ID, "uploaded")
	return nil
}

func (a *App) video(ctx context.Context, args []string) error {
	v, err := a.api.GetVideo(ctx, args[0])
	if err != nil {
		return err
	}
	a.println(v.Filename, v.URL)
	return nil
}

func (a *App) deactivate(ctx context.Context, args []string) error {
	kind := models.Kind(args[0])
	switch kind {
	case models.KindAccount, models.KindCharacter, models.KindMemory, models.KindVideo:
	default:
		return fmt.Errorf("unknown kind %q", args[0])
	}

	if err := a.api.Deactivate(ctx, kind, args[1]); err != nil {
		return err
	}
	a.println("Deactivated", args[0], args[1])
	return nil
}
