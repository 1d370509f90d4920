// Package middleware provides HTTP middleware for the MCP Lens server's
// HTTP and SSE transports: request metrics with bounded label cardinality
// and standard security headers.
package middleware
