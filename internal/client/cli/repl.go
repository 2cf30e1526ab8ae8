package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gamenews/internal/client/identity"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	SocialLogin(ctx context.Context, kind identity.Kind) error
	ResetPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	News(ctx context.Context, category string) error
	Categories(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Bookmark(ctx context.Context, id string) error
	Unbookmark(ctx context.Context, id string) error
	Bookmarks(ctx context.Context) error
	ClearBookmarks(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: login, signup, google, apple, facebook, reset, exit"
	helpSignedIn  = "Available commands: news [category], categories, search [#category] <query>, " +
		"bookmark <id>, unbookmark <id>, bookmarks, clearbookmarks, whoami, logout, exit"
)

// runREPL reads commands from reader until EOF or "exit"/"quit" and
// dispatches them to a.
//
//	Signed out:
//	  login | signup | reset      email forms
//	  google | apple | facebook   external sign-in
//
//	Signed in:
//	  news [category]             featured article and latest news
//	  categories                  category ids
//	  search [#category] <query>  search titles, descriptions and sources
//	  bookmark <id> | unbookmark <id> | bookmarks | clearbookmarks
//	  whoami | logout
//
// Sign-in commands are refused while signed in and the rest while signed
// out. Handler errors are ignored here; handlers report to the user
// themselves. The loop ends once ctx is cancelled.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("gn %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil || ctx.Err() != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if signedOutCommands[cmd] {
			if a.isLoggedIn() {
				printlnFn("Already signed in. Use 'logout' first.")
				continue
			}
			dispatchSignedOut(ctx, a, cmd)
			continue
		}

		if signedInCommands[cmd] {
			if !a.isLoggedIn() {
				printlnFn("Please sign in first (type 'help' for commands)")
				continue
			}
			dispatchSignedIn(ctx, a, cmd, args)
			continue
		}

		printlnFn("Unknown command:", cmd)
	}
}

var signedOutCommands = map[string]bool{
	"login": true, "signup": true, "reset": true,
	"google": true, "apple": true, "facebook": true,
}

var signedInCommands = map[string]bool{
	"news": true, "categories": true, "search": true,
	"bookmark": true, "unbookmark": true, "bookmarks": true, "clearbookmarks": true,
	"whoami": true, "logout": true,
}

func dispatchSignedOut(ctx context.Context, a execIface, cmd string) {
	switch cmd {
	case "login":
		_ = a.Login(ctx)
	case "signup":
		_ = a.Register(ctx)
	case "reset":
		_ = a.ResetPassword(ctx)
	case "google":
		_ = a.SocialLogin(ctx, identity.KindGoogle)
	case "apple":
		_ = a.SocialLogin(ctx, identity.KindApple)
	case "facebook":
		_ = a.SocialLogin(ctx, identity.KindFacebook)
	}
}

func dispatchSignedIn(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "news":
		category := ""
		if len(args) > 0 {
			category = args[0]
		}
		_ = a.News(ctx, category)
	case "categories":
		_ = a.Categories(ctx)
	case "search":
		_ = a.Search(ctx, args)
	case "bookmark", "unbookmark":
		if len(args) == 0 {
			printlnFn("Usage:", cmd, "<id>")
			return
		}
		if cmd == "bookmark" {
			_ = a.Bookmark(ctx, args[0])
		} else {
			_ = a.Unbookmark(ctx, args[0])
		}
	case "bookmarks":
		_ = a.Bookmarks(ctx)
	case "clearbookmarks":
		_ = a.ClearBookmarks(ctx)
	case "whoami":
		_ = a.WhoAmI(ctx)
	case "logout":
		_ = a.Logout(ctx)
	}
}
