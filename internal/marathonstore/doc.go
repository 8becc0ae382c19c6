// Package marathonstore persists generated marathons in SQLite. It sits on
// the caller side of the pipeline boundary: only the CLI touches it, and the
// planner packages never import it.
package marathonstore
