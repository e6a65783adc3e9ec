// Package store defines the persistence interfaces for the biological-age
// engine and the error taxonomy their implementations share. Interfaces live
// here; the postgres package provides the production implementations and the
// mocks package provides in-memory fakes for service tests.
package store
