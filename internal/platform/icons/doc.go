// Package icons defines the glyph identifiers used by the job portal UI.
//
// Services refer to icons by stable ids; presentation resolves each id to a
// Lucide symbol and a tone class so themes can change without touching callers.
package icons
