// Package middleware provides observational middleware for reducer stores: structured logging,
// prometheus counters, state invariant assertions and in-memory recording of dispatches.
//
// None of them can change the outcome of a dispatch. Invariant reports violations by panicking.
package middleware
