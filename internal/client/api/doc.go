// Package api is the HTTP client for the dropout prediction backend.
//
// # Request wrapper
//
// Client.Request sends one HTTP request to base URL + endpoint and returns
// the parsed body: decoded JSON when the response Content-Type says JSON,
// raw text otherwise. It
//
//   - adds Content-Type: application/json, an X-Request-ID, and a bearer
//     Authorization header when the session holds a token; caller headers
//     override any of these;
//   - aborts after the configured timeout and returns an error matching
//     ErrTimeout;
//   - turns non-2xx statuses into *StatusError, whose message is taken from
//     the body's "error" field, else its "message" field, else a generic
//     "Request failed with status N";
//   - shows the sink's loading indicator for the duration of the call and
//     hides it on every path;
//   - never retries. Failures are logged, shown through the sink and
//     returned.
//
// # Endpoints
//
// Typed helpers (Login, Health, StudentDashboard, ...) wrap the backend
// routes. Login stores the issued token, user and role in the session.
package api
