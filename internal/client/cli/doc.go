// Package cli provides the interactive Momentum command-line client.
//
// It wires configuration, the session store, the HTTP transport and the
// application services, then runs a REPL. Typical flow: onboard or log in,
// review the daily plan, toggle objectives, and finish the day with a
// check-in.
//
// Service failures are printed by a console notifier as "[Error] ..." and
// successes as "[OK] ...". The prompt shows the signed-in username, taken
// from the latest session snapshot.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
