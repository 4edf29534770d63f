// Package library implements the organization engine over scanned media
// entries: grouping into artist/album collections, search, type, and
// rating filters, and multi-key sorting with locale-aware collation.
//
// Every function is pure and total: inputs are never mutated, nil and
// empty inputs yield empty outputs, and ratings are read through an
// injected RatingLookup rather than ambient state.
package library
