// Package secrets provides encrypted-at-rest key/value storage standing in
// for the platform keychain on desktop and CI environments.
package secrets

// Storage is an atomic per-key secret store. Implementations must persist
// values encrypted and survive process restarts.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
