// Package http implements the HTTP transport of the reference backend.
//
// It wires chi routes for activities, notes and the encryption endpoints
// (encrypted data probe and legacy key registration). Authentication,
// request tracing, access logging, Prometheus metrics and gzip compression
// are handled here before requests reach the service layer. Record values
// are stored and returned exactly as the client sent them; the server never
// sees plaintext or keys.
package http
