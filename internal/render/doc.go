// Package render serializes a gallery model into one self-contained HTML
// document.
//
// The page carries an inline stylesheet and a script block holding the model
// as JSON plus a small slideshow state machine: per-section cursor indices,
// Prev/Next/Select/Reload transitions, and an auto-advance timer that never
// skips past a playing video or an embed. Media sources keep the generator's
// cache-busting version token; video reloads additionally append a fresh
// timestamp parameter so browsers refetch the stream.
package render
