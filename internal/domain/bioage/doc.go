// Package bioage implements the deterministic biological-age engine: the
// onboarding baseline scorer, the daily metric scoring bands, the streak
// transition table, the immutable state advance, and the read-only trend and
// aggregation views. Everything in this package is pure; persistence and
// transport live elsewhere.
package bioage
