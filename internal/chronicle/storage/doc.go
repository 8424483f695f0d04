// Package storage defines the persistence interfaces for the chronicle
// service.
//
// It provides a high-level abstraction for storing campaigns, characters,
// aliases, and sessions. Implementations of these interfaces (e.g., using
// SQLite) can be found in subpackages.
//
// ErrNotFound indicates a requested record is missing from Get-style
// lookups; Find-style lookups report absence through a boolean instead so
// missing records never read as failures.
package storage
