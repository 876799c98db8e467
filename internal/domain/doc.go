// Package domain contains shared domain types used across entity sub-packages.
// Payload types live in sub-packages (domain/conversation, domain/ediscovery).
// This root package holds sentinel errors, validation types, and the
// annotation model used to report non-fatal transform failures.
package domain
