// Package app provides the application service layer.
//
// Orchestrates use cases: comment submission with sentiment labelling,
// analytics report generation, CSV export and the admin dashboard counters.
// Sits between HTTP handlers and domain repositories. Depends on domain
// interfaces, not concrete implementations.
package app
