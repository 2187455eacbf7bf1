// Package httpapi exposes the assistant over HTTP.
//
// Endpoints:
//   - POST /chat: answer a chat message
//   - GET /health: liveness probe
package httpapi
