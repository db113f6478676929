package dataset

import (
	"fmt"
	"math/rand/v2"
)

var secretPrefixes = []string{
	"The hidden truth about", "The secret behind", "What nobody knows about",
	"The mystery of", "The untold story of", "The real meaning of",
	"The classified information regarding", "The confidential details about",
}

var secretSuffixes = []string{
	"the main character's true identity",
	"the ending nobody expected",
	"the author's real inspiration",
	"the hidden chapter that was removed",
	"the alternate ending",
	"the sequel that never happened",
	"the real-life events it's based on",
	"the controversial plot twist",
}

// Secret synthesizes the secret content for a book. Purely cosmetic test
// data; no uniqueness or integrity constraints apply.
func Secret(rng *rand.Rand, title string) string {
	prefix := secretPrefixes[rng.IntN(len(secretPrefixes))]
	suffix := secretSuffixes[rng.IntN(len(secretSuffixes))]
	return fmt.Sprintf("%s '%s': %s", prefix, title, suffix)
}
