// Package dataprocessing implements the attendance pipeline: typed cell
// parsing, table normalization, per-date grouping with calendar-gap filling,
// timeline construction, day classification and aggregation.
//
// The pipeline runs synchronously to completion for each upload. Nothing in
// it is fatal: unparseable cells degrade to their raw text, missing columns
// degrade to documented no-op or zeroed behavior, and unclassifiable days
// become CategoryOther with a structured diagnostic.
package dataprocessing
