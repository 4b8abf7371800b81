// internal/shell/auth.go
package shell

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kadirkilicoglu/PrepAI/internal/api"
)

func (a *App) runLogin(ctx context.Context, _ []string) error {
	if err := a.requireLoggedOut(); err != nil {
		return err
	}
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := a.prompt("Password")
	if err != nil {
		return err
	}

	auth, err := a.Client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := a.Session.SetSession(auth.Token, &auth.User); err != nil {
		return err
	}

	a.printf("Logged in as %s\n", auth.User.FullName)
	return nil
}

func (a *App) runRegister(ctx context.Context, _ []string) error {
	if err := a.requireLoggedOut(); err != nil {
		return err
	}
	name, err := a.prompt("Full name")
	if err != nil {
		return err
	}
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := a.prompt("Password")
	if err != nil {
		return err
	}

	auth, err := a.Client.Register(ctx, api.Registration{
		Email:    email,
		Password: password,
		FullName: name,
	})
	if err != nil {
		return err
	}
	if err := a.Session.SetSession(auth.Token, &auth.User); err != nil {
		return err
	}

	a.printf("Account created, logged in as %s\n", auth.User.FullName)
	return nil
}

// requireLoggedOut mirrors the auth-page redirect: with a live session,
// login and register refuse instead of stacking a second session.
func (a *App) requireLoggedOut() error {
	token, err := a.Session.Token()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}
	u, err := a.Session.User()
	if err != nil {
		return err
	}
	if u != nil {
		return fmt.Errorf("already logged in as %s, run `prepai logout` first", u.FullName)
	}
	return fmt.Errorf("already logged in, run `prepai logout` first")
}

func (a *App) runLogout(_ context.Context, _ []string) error {
	if err := a.Session.Clear(); err != nil {
		return err
	}
	a.printf("Logged out\n")
	return nil
}

// runProfile without flags prints the cached profile; with flags it pushes
// the change to the backend and re-caches the returned profile.
func (a *App) runProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(a.Stdout)
	name := fs.String("name", "", "new display name")
	avatar := fs.String("avatar", "", "path to a new avatar image")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" && *avatar == "" {
		u, err := a.Session.User()
		if err != nil {
			return err
		}
		if u == nil {
			a.printf("no cached profile\n")
			return nil
		}
		a.printf("%s <%s>\n", u.FullName, u.Email)
		return nil
	}

	current, err := a.Session.User()
	if err != nil {
		return err
	}
	fullName := *name
	if fullName == "" && current != nil {
		fullName = current.FullName
	}

	// Keep the reader a plain io.Reader so a missing avatar stays nil.
	var (
		avatarReader io.Reader
		avatarName   string
	)
	if *avatar != "" {
		f, err := os.Open(*avatar)
		if err != nil {
			return err
		}
		defer f.Close()
		avatarReader = f
		avatarName = filepath.Base(*avatar)
	}

	u, err := a.Client.UpdateProfile(ctx, fullName, avatarReader, avatarName)
	if err != nil {
		return err
	}
	if err := a.Session.SetUser(u); err != nil {
		return err
	}

	a.printf("Profile updated: %s\n", u.FullName)
	return nil
}
