// Package integration provides integration tests for the filter API server.
// These tests run the complete server over a real catalog file, including
// language negotiation and hot reload of the catalog.
package integration
