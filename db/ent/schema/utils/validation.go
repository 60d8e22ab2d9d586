package utils

import "fmt"

// EnumValidator returns an ent field validator accepting exactly the given
// values. Used for columns whose canonical values live in the constants
// package rather than in a database enum type.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not allowed", s)
	}
}
