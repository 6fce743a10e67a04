// Package library is the host layer over the prompt store.
//
// The store itself is synchronous and not safe for concurrent use. Service
// owns the only reference to it and serialises every operation, including the
// flush that ends each mutation, behind one mutex. CLI commands and HTTP
// handlers go through Service only.
//
// # Saving From An Editor
//
// Save implements the editor workflow. Each caller identifies itself with a
// token; the Tracker remembers the last prompt that token saved. A new save is
// compared to that text with the similarity classifier: a rewrite (or a first
// save) adds a prompt, an edit updates the remembered prompt in place. If the
// remembered prompt was deleted meanwhile, the latest prompt of the category is
// updated instead, and if there is none a prompt is added.
//
// # Routes
//
//   - /prompts: search, add, save, get, update, delete, history, thumbnails
//   - /categories/:category/latest: load the newest prompt of a category
//   - /stats, /export, /merge, /cleanup, /settings
//   - /sessions/:token: forget a caller's tracked prompt
package library
