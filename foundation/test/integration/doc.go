// Package integration provides integration tests for the molecule foundation library.
//
// Package: integration
// Title: Foundation Integration Tests
// Description: Tests that verify the interaction between the formula engine,
//              the structured error package and the logger, plus benchmarks
//              of realistic parsing workloads across module boundaries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Integration suite for the formula modules
//
// Test Categories:
//
// Error Integration Tests (error_integration_test.go):
// - Every syntax error kind maps to a formula error code and low severity
// - Parse errors survive wrapping into structured errors (errors.Is / errors.As)
// - Logged parse errors carry code, offset and request ID as fields
//
// Performance Tests (performance_test.go):
// - Single formula parsing for flat, bracketed and deeply nested input
// - Batch parsing through the engine worker pool
//
// Running:
//
//	go test ./test/integration/...
//	go test -bench=. -benchmem ./test/integration/...
package integration
