// Package oracle wraps the external generative text service used for
// schedule selection and pairing enrichment.
//
// The service is treated as an opaque black box: it accepts a natural
// language prompt and a token budget and returns free-form text expected to
// embed exactly one JSON object. DecodeObject extracts and repairs that
// object; callers validate its shape themselves.
//
// The client performs exactly one HTTP attempt per call. Failure recovery is
// the caller's concern: the selector treats failures as fatal, the enricher
// isolates them per entry.
package oracle
