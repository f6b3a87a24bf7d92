// Package cli provides the interactive dropwatch command-line client.
//
// It wires configuration, the local session database, the dashboard API
// client and a console notifier, and exposes them through a cobra command
// tree whose default command is a REPL.
//
// Key features:
//   - Login / Logout / Whoami against the session kept in SQLite
//   - Role-aware dashboard view (student, teacher, parent, admin)
//   - Raw GET of any API path, health and statistics
//   - Normalising and rendering recommendation text
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
