// Package cli provides the interactive griot command-line client.
//
// App wires configuration and the gRPC client into a read-eval-print loop.
// Commands map one to one onto server operations: sign up and log in,
// manage accounts and their beloved ones, add characters and memories,
// and request upload or download URLs for videos. A background watcher
// pings the server and flips the prompt between online and offline.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
