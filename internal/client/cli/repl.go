package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

type command struct {
	usage string
	// minArgs is the number of required positional arguments.
	minArgs int
	public  bool
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register":   {usage: "register", public: true, run: (*App).register},
	"login":      {usage: "login", public: true, run: (*App).login},
	"reset":      {usage: "reset <email>", minArgs: 1, public: true, run: (*App).reset},
	"logout":     {usage: "logout", run: (*App).logout},
	"profile":    {usage: "profile <user-id>", minArgs: 1, run: (*App).profile},
	"setprofile": {usage: "setprofile <user-id> <field> <value>", minArgs: 3, run: (*App).setProfile},

	"accounts":   {usage: "accounts", run: (*App).accounts},
	"newaccount": {usage: "newaccount <name>", minArgs: 1, run: (*App).newAccount},
	"rename":     {usage: "rename <account-id> <name>", minArgs: 2, run: (*App).rename},
	"invite":     {usage: "invite <account-id> <user-id>", minArgs: 2, run: (*App).invite},
	"uninvite":   {usage: "uninvite <account-id> <user-id>", minArgs: 2, run: (*App).uninvite},
	"beloved":    {usage: "beloved <account-id>", minArgs: 1, run: (*App).beloved},

	"newcharacter": {usage: "newcharacter <account-id> <family|friend|other|-> <name>", minArgs: 3, run: (*App).newCharacter},
	"newmemory":    {usage: "newmemory <account-id> <title>", minArgs: 2, run: (*App).newMemory},
	"memories":     {usage: "memories", run: (*App).memories},
	"show":         {usage: "show <memory-id>", minArgs: 1, run: (*App).show},
	"link":         {usage: "link <memory-id> <character-id>", minArgs: 2, run: (*App).link},
	"unlink":       {usage: "unlink <memory-id> <character-id>", minArgs: 2, run: (*App).unlink},
	"upload":       {usage: "upload <memory-id> <path> [content-type]", minArgs: 2, run: (*App).upload},
	"video":        {usage: "video <video-id>", minArgs: 1, run: (*App).video},
	"deactivate":   {usage: "deactivate <account|character|memory|video> <id>", minArgs: 2, run: (*App).deactivate},
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) getStatus() string {
	s := a.userName
	if a.Mode != "" {
		s = strings.TrimSpace(s + " " + string(a.Mode))
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) help() {
	names := make([]string, 0, len(commands))
	for name, c := range commands {
		if c.public || a.api.LoggedIn() {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	a.println("Available commands:")
	for _, n := range names {
		a.println("  " + commands[n].usage)
	}
	a.println("  exit")
}

// runREPL reads one command per line and dispatches it until EOF or exit.
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a *App) {
	for {
		fmt.Fprintf(a.out, "griot %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			a.help()
			continue
		case "exit", "quit":
			a.println("Bye!")
			return
		}

		cmd, ok := commands[name]
		switch {
		case !ok:
			a.println("Unknown command:", name)
		case !cmd.public && !a.api.LoggedIn():
			a.println("Please login first")
		case len(args) < cmd.minArgs:
			a.println("Usage:", cmd.usage)
		default:
			cctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
			if err := cmd.run(a, cctx, args); err != nil {
				a.println("Error:", err.Error())
			}
			cancel()
		}
	}
}
