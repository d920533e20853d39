// Package models defines the records exchanged with the Dreamcatcher
// backend. Entities are carried verbatim in the wire format (snake_case
// JSON); the client derives nothing and trusts the server's representation.
//
// Timestamps stay as the server's ISO-8601 strings. The backend emits them
// with and without a timezone suffix depending on the column, so parsing is
// done lazily only where a computation needs it (see SleepLog.Duration).
package models
