// Package substra is a command line client for the nodes of a substra
// federated learning platform.
//
// It includes:
//   - A node SDK with an HTTP client and an in-memory mock (sdk)
//   - Profile management in ~/.substra (config)
//   - Table, detail and JSON printers per asset kind (printers)
//   - CEL filters over listed assets (filters)
//   - Operation handlers and flag sets behind the substra command (handlers, flags)
package substra
