package session

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrRegistrationFailed   = errors.New("failed to create account")
	ErrGoogleSignInFailed   = errors.New("google sign-in failed")
	ErrAppleSignInFailed    = errors.New("apple sign-in failed")
	ErrFacebookSignInFailed = errors.New("facebook sign-in failed")
	ErrResetRequestFailed   = errors.New("failed to send password reset email")

	// ErrPersistence marks storage failures. Sign-in style operations wrap
	// it; Restore and SignOut log and swallow it.
	ErrPersistence = errors.New("session persistence failed")

	ErrProviderUnsupported   = errors.New("sign-in provider is not available on this platform")
	ErrProviderNotConfigured = errors.New("sign-in provider is not configured")
	errProviderFlowFailed    = errors.New("provider flow did not complete")
)
