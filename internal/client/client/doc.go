// Package client contains client-side building blocks for GophGram.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the GophGram auth backend: CreateAccount, GetSalt, EstablishSession,
//     CheckSession, RevokeSession and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, attaches an access token to the calls that need one and
//     maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrAlreadyExists,
// ErrInvalidArgument.
//
// # Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and deadlines.
package client
