// Package resolve maps free-form references to canonical stored entities
// within a campaign: a name string to a character, or a session hint (an
// explicit number or a "latest" flag) to a session.
//
// Resolvers are stateless and safe for concurrent use. They read through an
// injected Reader port and never mutate the store. Ambiguous references are
// never surfaced as errors; they are settled by a deterministic tie-break so
// ingestion pipelines never stall on disambiguation.
package resolve
