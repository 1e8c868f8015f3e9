//go:build unit || e2e

package testutil

// Field dynamically modifies one key of a request map in a test case; nil
// removes the key.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
