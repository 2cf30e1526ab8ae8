// Package cli is the interactive terminal client for gamenews.
//
// It wires configuration, local storage, the session manager and the news
// catalog, then runs a read-eval-print loop. Signed out, the loop offers the
// sign-in screens: email login, sign-up, password reset and the Google,
// Apple and Facebook flows. Signed in, it offers the feed, categories,
// search, saved articles, the profile and logout.
//
// The REPL is started with App.Run, which blocks until the user exits or
// input ends. See runREPL for the command table.
package cli
