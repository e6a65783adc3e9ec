// Package postgres provides PostgreSQL implementations of the store
// interfaces. Driver errors are translated into the store error taxonomy by
// MapError so nothing above this package depends on pgx types.
package postgres
