// Package server provides the HTTP layer: route registration, session
// handling and the JSON handlers for the consultation API.
package server
