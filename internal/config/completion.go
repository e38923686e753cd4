package config

// KeyCompletions returns shell completion candidates for the value of key.
// Unknown keys have no candidates.
func KeyCompletions(key string) []string {
	if ValidateKey(key) != nil {
		return nil
	}
	return []string{"true", "false"}
}
