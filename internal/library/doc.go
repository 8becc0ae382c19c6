// Package library models the read-only movie index the pipeline selects
// from. The index is exported ahead of time by the media-server collaborator;
// this package only loads and validates it, never fetches or refreshes it.
package library
