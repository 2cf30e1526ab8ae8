// Package identity models external sign-in flows as a capability with a
// three-way outcome.
//
// A Provider runs one flow per Initiate call and classifies it as Success
// (with an access token and, when the provider can tell, a profile),
// Cancelled (the user backed out) or Failed. The session manager does not
// care how the token is obtained: MockProvider simulates the flow with a
// fixed delay, OAuthProvider runs a real authorization-code exchange with
// golang.org/x/oauth2.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind names the identity system a user signed in with.
type Kind string

const (
	KindGoogle   Kind = "google"
	KindApple    Kind = "apple"
	KindFacebook Kind = "facebook"
	KindEmail    Kind = "email"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindGoogle, KindApple, KindFacebook, KindEmail:
		return true
	}
	return false
}

// Outcome classifies a finished provider flow.
type Outcome int

const (
	Success Outcome = iota + 1
	Cancelled
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

var (
	// ErrFlowCancelled is returned by a CodeSource when the user abandons
	// the flow. Providers map it to Cancelled.
	ErrFlowCancelled = errors.New("identity: flow cancelled")

	ErrStateMismatch = errors.New("identity: oauth state mismatch")
	ErrNoAccessToken = errors.New("identity: provider returned no access token")
)

// Profile is what a provider knows about the signed-in account.
type Profile struct {
	Subject   string
	Email     string
	Name      string
	AvatarURL string
}

// Result is the classified result of Initiate. AccessToken and Profile are
// only meaningful for Success; Err only for Failed.
type Result struct {
	Outcome     Outcome
	AccessToken string
	Profile     *Profile
	Err         error
}

func Succeeded(token string, profile *Profile) Result {
	return Result{Outcome: Success, AccessToken: token, Profile: profile}
}

func Cancel() Result {
	return Result{Outcome: Cancelled}
}

func Fail(err error) Result {
	return Result{Outcome: Failed, Err: err}
}

// Provider runs one external sign-in flow per call.
type Provider interface {
	Kind() Kind
	Initiate(ctx context.Context) Result
}

// Platform is the host the client runs on. Some flows are tied to it.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// ParsePlatform accepts the platform names case-insensitively.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return p, nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

// SupportsApple reports whether Sign in with Apple can run on p.
func (p Platform) SupportsApple() bool {
	return p != PlatformWeb
}
