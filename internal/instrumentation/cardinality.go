package instrumentation

import "strings"

// Cardinality management helpers for metrics and span attributes.
// Raw Lens identifiers (account addresses, post ids, full usernames) are
// effectively unbounded and must never be used as metric label values.
// These helpers fold them into a handful of stable classes.

// IdentifierType classifies a Lens identifier for metrics.
type IdentifierType string

// Identifier type classifications.
const (
	// IdentifierTypeAddress is an EVM address (0x-prefixed hex).
	IdentifierTypeAddress IdentifierType = "address"

	// IdentifierTypeUsername is a namespaced handle such as lens/alice.
	IdentifierTypeUsername IdentifierType = "username"

	// IdentifierTypeLocalName is a bare handle without a namespace.
	IdentifierTypeLocalName IdentifierType = "local_name"

	// IdentifierTypeEmpty is the absence of an identifier.
	IdentifierTypeEmpty IdentifierType = "empty"

	// IdentifierTypeOther is an identifier that matches no known pattern,
	// typically an opaque post or entity id.
	IdentifierTypeOther IdentifierType = "other"
)

// ClassifyIdentifier classifies a Lens identifier into a type for metrics.
// This prevents cardinality explosion by grouping identifiers into
// categories instead of recording the identifier itself.
//
// Examples:
//
//	ClassifyIdentifier("")                  // "empty"
//	ClassifyIdentifier("0xA1b2...")         // "address"
//	ClassifyIdentifier("lens/alice")        // "username"
//	ClassifyIdentifier("alice")             // "local_name"
//	ClassifyIdentifier("42-0x01-DA-...")    // "other"
func ClassifyIdentifier(identifier string) string {
	if identifier == "" {
		return string(IdentifierTypeEmpty)
	}
	if isAddress(identifier) {
		return string(IdentifierTypeAddress)
	}
	if strings.Contains(identifier, "/") {
		return string(IdentifierTypeUsername)
	}
	if isLocalName(identifier) {
		return string(IdentifierTypeLocalName)
	}
	return string(IdentifierTypeOther)
}

// UsernameNamespace extracts the namespace part of a full username. The
// namespace set is small and owned by the protocol, so it is safe as a
// label value where the full handle is not.
//
// Examples:
//
//	UsernameNamespace("lens/alice")  // "lens"
//	UsernameNamespace("alice")       // "unknown"
//	UsernameNamespace("")            // "unknown"
func UsernameNamespace(username string) string {
	namespace, _, found := strings.Cut(username, "/")
	if !found || namespace == "" {
		return "unknown"
	}
	return namespace
}

func isAddress(s string) bool {
	if len(s) != 42 || !strings.HasPrefix(s, "0x") {
		return false
	}
	for _, r := range s[2:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// isLocalName matches bare handles: lowercase alphanumerics, underscores
// and hyphens, starting with a letter or digit.
func isLocalName(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case (r == '_' || r == '-') && i > 0:
		default:
			return false
		}
	}
	return true
}
