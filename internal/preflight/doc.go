// Package preflight runs environment checks ahead of marathon generation:
// directory access, library index readability, and oracle reachability.
package preflight
