// Package planner implements the marathon generation pipeline.
//
// A run proceeds in fixed stages: preference dates are normalized, one
// oracle call lays out the dated movie schedule (validated against the
// library index so hallucinated movie ids never survive), a second wave of
// rate-limited batched oracle calls attaches drink/food pairings per entry,
// and the assembler stamps identity and timestamps onto the final aggregate.
//
// Failure semantics differ by stage: anything up to and including schedule
// selection is fatal and aborts the run, while pairing enrichment isolates
// failures per entry and always lets the full schedule through.
package planner
