// Package audit provides audit trail logging for Holecard operations.
//
// Significant operations (init, hand and card mutations, export, import,
// password changes) are recorded in a JSON Lines log at:
//
//	~/.holecard/audit.jsonl
//
// Entries carry timestamps, operation names, and object names only — never
// card values, passwords, or key material.
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error. Operations should never
// fail just because audit logging failed.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display or analysis.
// Malformed entries are silently skipped to handle partial writes.
package audit
