// Package marathon defines the domain aggregate produced by the planning
// pipeline: user preferences going in, and the assembled multi-day marathon
// with its per-night pairing suggestions coming out.
//
// All types here are plain data. Movie records live in the library
// package; persistence lives in marathonstore. The pipeline in internal/planner
// is the only writer of ScheduleEntry and Marathon values.
package marathon
