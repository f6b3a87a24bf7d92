// Package storage provides the key-value persistence used for the dashboard
// session: auth token, serialized user record and role, plus any other small
// values the client wants to keep between runs.
//
// Backends
//
//   - SQLiteBackend: a single kv table in a local SQLite file (modernc.org/sqlite),
//     schema managed by embedded goose migrations.
//   - MemoryBackend: an in-process map with an optional byte quota, used in
//     tests and for throwaway sessions.
//
// Values are plain strings, each key is independent and no invariant spans
// more than one key. Store layers JSON encoding on top and, like browser
// storage wrappers, logs write failures instead of returning them.
package storage
