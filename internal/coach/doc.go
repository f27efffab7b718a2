// Package coach implements the recycling coach: a conversational overlay
// that keeps the full transcript for display and forwards a bounded window
// of it, together with the latest scan, to the chat backend.
package coach
