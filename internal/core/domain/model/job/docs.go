// Package job provides the Job aggregate of the hiring backend.
//
// A Job is a listing shown on the careers page. Its identifier is assigned
// by the store when the job is first persisted and never changes afterwards.
// The mutable part of a listing is grouped in Details, which Update replaces
// as a whole; the applicant counter and the timestamps are owned by the
// aggregate and are not touched by Update.
//
// The package also provides Filter, the normalised search criteria, and
// LocationKey, the key under which a location appears in filter options.
package job
