package cli

import (
	"context"
	"fmt"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
)

// Login prompts for credentials and authenticates. Transport and
// credential errors are rendered inline; the user decides whether to
// retry.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, errorStyle.Render("Login failed: "+err.Error()))
		return err
	}

	fmt.Fprintln(a.out, successStyle.Render("Signed in as "+displayName(user)))
	return nil
}

// Register prompts for account details, creates the account, and signs in
// with the same credentials.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter display name (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.session.Register(ctx, email, password, name)
	if err != nil {
		fmt.Fprintln(a.out, errorStyle.Render("Registration failed: "+err.Error()))
		return err
	}

	fmt.Fprintln(a.out, successStyle.Render("Account created, signed in as "+displayName(user)))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (since %s)\n", displayName(snap.User), snap.User.Email, snap.User.CreatedAt)
	return nil
}

func displayName(u *models.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
