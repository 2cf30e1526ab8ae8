package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gamenews/internal/client/identity"
	"github.com/dmitrijs2005/gamenews/internal/client/session"
	"github.com/dmitrijs2005/gamenews/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var providerTitles = map[identity.Kind]string{
	identity.KindGoogle:   "Google",
	identity.KindApple:    "Apple",
	identity.KindFacebook: "Facebook",
}

// userMessage turns a session error into the text shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, session.ErrProviderNotConfigured):
		return "This sign-in method is not configured"
	case errors.Is(err, session.ErrPersistence):
		return "Could not save your session on this device"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "The request was interrupted"
	}
	return "An error occurred"
}

func (a *App) showErrors(title string, messages []string) {
	a.println(title + ":")
	for _, m := range messages {
		a.println("  -", m)
	}
}

// Login prompts for email and password and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if msgs, err := collect(validateEmail(email), validatePassword(string(password))); err != nil {
		a.showErrors("Please fix the following", msgs)
		return err
	}

	a.println("Signing in...")
	if err := a.session.SignIn(ctx, email, string(password)); err != nil {
		a.println("Sign In Failed:", userMessage(err))
		return err
	}

	a.println("Welcome back,", a.session.State().User.Name+"!")
	return nil
}

// Register prompts for the sign-up form and creates an account.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	msgs, err := collect(
		validateName(name),
		validateEmail(email),
		validatePassword(string(password)),
		validateConfirmation(string(password), string(confirm)),
	)
	if err != nil {
		a.showErrors("Please fix the following", msgs)
		return err
	}

	a.println("Creating account...")
	if err := a.session.SignUp(ctx, name, email, string(password)); err != nil {
		a.println("Sign Up Failed:", userMessage(err))
		return err
	}

	a.println("Welcome,", name+"!")
	return nil
}

// SocialLogin runs the sign-in flow of one external provider.
func (a *App) SocialLogin(ctx context.Context, kind identity.Kind) error {
	title := providerTitles[kind]

	var err error
	switch kind {
	case identity.KindGoogle:
		err = a.session.SignInWithGoogle(ctx)
	case identity.KindApple:
		err = a.session.SignInWithApple(ctx)
	case identity.KindFacebook:
		err = a.session.SignInWithFacebook(ctx)
	default:
		a.println("Unknown sign-in provider:", kind)
		return nil
	}

	switch {
	case errors.Is(err, session.ErrProviderUnsupported):
		a.println("Not Available:", title, "Sign-In is not available on", a.config.Platform)
		return err
	case err != nil:
		a.println(title, "Sign In Failed:", userMessage(err))
		return err
	case !a.isLoggedIn():
		a.println(title, "sign-in cancelled")
		return nil
	}

	a.println("Signed in with", title, "as", a.session.State().User.Email)
	return nil
}

// ResetPassword asks for an email and requests a reset link.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your email address", a.out)
	if err != nil {
		return err
	}

	switch {
	case email == "":
		a.println("Email is required")
		return ErrInvalidInput
	case !emailPattern.MatchString(email):
		a.println("Please enter a valid email address")
		return ErrInvalidInput
	}

	if err := a.session.ResetPassword(ctx, email); err != nil {
		a.println("Failed to send reset email")
		return err
	}

	a.println("Check your email: we sent a password reset link to", email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.SignOut(ctx)
	a.println("Signed out")
	return nil
}

// WhoAmI prints the profile of the signed-in user.
func (a *App) WhoAmI(_ context.Context) error {
	u := a.session.State().User
	if u == nil {
		a.println("Not signed in")
		return nil
	}

	a.println("Name:    ", u.Name)
	a.println("Email:   ", u.Email)
	a.println("Provider:", u.Provider)
	if t, err := u.CreatedTime(); err == nil {
		a.println("Member since", t.Format("January 2006"))
	}
	if u.Avatar != "" {
		a.println("Avatar:  ", u.Avatar)
	}
	return nil
}
