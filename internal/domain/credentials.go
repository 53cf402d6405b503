// Package domain contains the core business entities and value objects.
package domain

import "strings"

// CredentialSet is an immutable, ordered list of API keys for one provider.
// It is built once at startup and only read afterwards, so it is safe to
// share between concurrent requests.
type CredentialSet struct {
	keys []string
}

// NewCredentialSet creates a CredentialSet, trimming whitespace and
// dropping empty and duplicate keys while keeping the original order.
func NewCredentialSet(keys []string) CredentialSet {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return CredentialSet{keys: out}
}

// ParseCredentials splits a comma-separated key list.
func ParseCredentials(raw string) CredentialSet {
	if strings.TrimSpace(raw) == "" {
		return CredentialSet{}
	}
	return NewCredentialSet(strings.Split(raw, ","))
}

// Len returns the number of usable keys.
func (c CredentialSet) Len() int {
	return len(c.keys)
}

// Empty reports whether no key is configured.
func (c CredentialSet) Empty() bool {
	return len(c.keys) == 0
}

// Keys returns a copy of the keys in failover order.
func (c CredentialSet) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}
