// Package store provides the comment and user repositories.
//
// Three implementations share the domain contracts: an in-memory store for
// tests and ephemeral runs, a JSON file store that persists the two
// collections as "comments" and "users" documents under a data directory,
// and a PostgreSQL store for deployments with a real database. The file
// store loads once at startup and treats unreadable or malformed files as
// empty collections; that recovery is logged but never surfaced to users.
package store
