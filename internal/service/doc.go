// Package service contains the application services that orchestrate the
// biological-age engine, the stores, and authentication. Services own
// transaction boundaries; the engine itself stays pure and the stores stay
// dumb.
package service
