// Package backend is the HTTP client for the classification, statistics,
// history, achievement and chat endpoints.
package backend
