// Package cli provides the diary command-line client.
//
// It wires configuration, the HTTP API client and the entry state store,
// and exposes them as one-shot commands (list, show, create, edit, delete,
// export) and as an interactive REPL, which is the default command.
//
// The REPL is started via runREPL, which blocks until the user exits.
package cli
