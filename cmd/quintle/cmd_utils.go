package main

import "github.com/quintle/quintle/feedback"

// parsePatternArg decodes a pattern argument against the configured length.
func parsePatternArg(arg string) (feedback.Pattern, error) {
	return feedback.ParsePattern(arg, flagLength)
}

// clampTop bounds a user-supplied display count to [0, n].
func clampTop(n, top int) int {
	if top < 0 {
		return 0
	}
	if top > n {
		return n
	}

	return top
}
