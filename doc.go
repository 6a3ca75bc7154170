// Package portside is the operations backend for a port terminal voice
// assistant demo.
//
// # Overview
//
// Portside exposes the terminal tool operations a voice agent calls
// during a customer conversation: container status queries and updates,
// electronic gate-pass generation, vessel schedule lookups and special
// service request submission. Every successful action is mirrored to
// connected dashboards over a WebSocket event stream.
//
// # Architecture
//
//	┌─────────────────┐       ┌─────────────────┐
//	│  Voice Agent    │       │   Dashboards    │
//	│  (tool calls)   │       │  (WebSocket)    │
//	└────────┬────────┘       └────────▲────────┘
//	         │                         │
//	┌────────▼─────────────────────────┴────────┐
//	│               API Server                  │
//	│            (Echo REST + Hub)              │
//	└────────┬──────────────────────────────────┘
//	         │
//	┌────────▼────────┐
//	│  Storage Layer  │
//	│ (EVE/CouchDB or │
//	│    in-memory)   │
//	└─────────────────┘
//
// # Components
//
//   - cmd/portside: CLI entry point (Cobra)
//   - internal/api: Echo HTTP server, tool endpoints and WebSocket hub
//   - internal/ops: tool operations and business rules
//   - internal/storage: CouchDB document store and in-memory backend
//   - internal/config: Viper-based configuration
//   - models: container, vessel, gate pass and service request documents
package portside
