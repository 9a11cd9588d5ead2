// Package cli provides the interactive FundScope command-line client.
//
// It wires configuration, local credential storage, the backend API client,
// the realtime channel and an interactive REPL. Typical flow: restore the
// session from storage, activate the realtime channel, and execute user
// commands until exit.
//
// Key features:
//   - Login / Register / Google sign-in / Logout
//   - Risk-profile wizard with fund recommendations
//   - Manual fund selection with portfolio diagnosis
//   - Advisory chat assistant
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
