package dataset

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

var firstNames = []string{
	"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry",
	"Iris", "Jack", "Kate", "Liam", "Maya", "Noah", "Olivia", "Peter",
	"Quinn", "Rachel", "Sam", "Tara", "Uma", "Victor", "Wendy", "Xavier",
	"Yara", "Zach", "Aria", "Blake", "Chloe", "Derek",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
}

var emailDomains = []string{"example.com", "test.com", "demo.com", "sample.org", "vampi.io"}

// Username builds a collision-free login handle from a name pair. The base
// candidate is the lowercased "first.last" concatenation; while the candidate
// is taken, an ascending integer suffix is appended until a free one appears.
// The suffix counter is unbounded and strictly increasing, so the call always
// terminates and never returns a handle present in used. The caller owns the
// used set and must record the returned handle in it.
func Username(first, last string, used map[string]struct{}) string {
	base := strings.ToLower(first) + "." + strings.ToLower(last)
	candidate := base
	for counter := 1; ; counter++ {
		if _, taken := used[candidate]; !taken {
			return candidate
		}
		candidate = fmt.Sprintf("%s%d", base, counter)
	}
}

// Email synthesizes an address for a handle. An empty domain draws one from
// the fixed pool. Addresses carry no uniqueness guarantee and may repeat.
func Email(rng *rand.Rand, username, domain string) string {
	if domain == "" {
		domain = emailDomains[rng.IntN(len(emailDomains))]
	}
	return username + "@" + domain
}

// samplePool returns up to n distinct entries drawn without replacement.
// When n exceeds the pool, the whole pool comes back shuffled and callers
// cycle through it; repeated pairs stay safe because Username still suffixes
// its way to a unique handle.
func samplePool(rng *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	perm := rng.Perm(len(pool))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[perm[i]]
	}
	return out
}
