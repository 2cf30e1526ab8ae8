package session

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gamenews/internal/client/identity"
)

// Storage keys. The two values are always written and removed together.
const (
	TokenKey   = "auth_token"
	ProfileKey = "user_data"
)

// timestampLayout matches JavaScript's Date.toISOString, which is what
// stored profiles have always carried.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// User is the signed-in identity. It is persisted as JSON under ProfileKey.
type User struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Name      string        `json:"name"`
	Avatar    string        `json:"avatar,omitempty"`
	Provider  identity.Kind `json:"provider"`
	CreatedAt string        `json:"createdAt"`
}

func (u User) validate() error {
	if u.ID == "" {
		return errors.New("profile has no id")
	}
	if !u.Provider.Valid() {
		return errors.New("profile has unknown provider")
	}
	return nil
}

// CreatedTime parses CreatedAt.
func (u User) CreatedTime() (time.Time, error) {
	return time.Parse(time.RFC3339, u.CreatedAt)
}

// State is a snapshot of the session.
type State struct {
	User      *User
	IsLoading bool
}

func (s State) IsAuthenticated() bool {
	return s.User != nil
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// providerTemplates are the profiles synthesized when a provider flow
// succeeds without returning profile data.
var providerTemplates = map[identity.Kind]User{
	identity.KindGoogle: {
		Email:  "user@gmail.com",
		Name:   "Google User",
		Avatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=200",
	},
	identity.KindApple: {
		Email: "user@icloud.com",
		Name:  "Apple User",
	},
	identity.KindFacebook: {
		Email:  "user@facebook.com",
		Name:   "Facebook User",
		Avatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=200",
	},
}
