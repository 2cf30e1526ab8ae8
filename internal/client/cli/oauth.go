package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/gamenews/internal/client/identity"
)

// promptCallback is the identity.CodeSource for the terminal: it shows the
// authorization URL and reads back the redirect URL the browser landed on.
// An empty answer cancels the flow.
func (a *App) promptCallback(ctx context.Context, authURL string) (identity.Callback, error) {
	if err := ctx.Err(); err != nil {
		return identity.Callback{}, err
	}

	a.println("Open this URL in your browser and sign in:")
	a.println(" ", authURL)
	line, err := getSimpleText(a.reader, "Paste the address you were redirected to (empty to cancel)", a.out)
	if err != nil {
		return identity.Callback{}, err
	}
	if line == "" {
		return identity.Callback{}, identity.ErrFlowCancelled
	}
	return parseCallback(line)
}

// parseCallback extracts code and state from a redirect URL. A provider
// error of access_denied means the user declined and maps to
// identity.ErrFlowCancelled.
func parseCallback(raw string) (identity.Callback, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return identity.Callback{}, fmt.Errorf("parse redirect: %w", err)
	}

	q := u.Query()
	if e := q.Get("error"); e != "" {
		if e == "access_denied" {
			return identity.Callback{}, identity.ErrFlowCancelled
		}
		return identity.Callback{}, fmt.Errorf("provider error: %s", e)
	}

	code := q.Get("code")
	if code == "" {
		return identity.Callback{}, errors.New("redirect has no authorization code")
	}
	return identity.Callback{Code: code, State: q.Get("state")}, nil
}
