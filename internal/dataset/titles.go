package dataset

import (
	"fmt"
	"math/rand/v2"
)

// maxTitleAttempts bounds the random probing phase. Exhausting it switches
// allocation to the deterministic fallback instead of erroring.
const maxTitleAttempts = 100

var bookGenres = []string{
	"Mystery", "SciFi", "Fantasy", "Romance", "Thriller", "Horror",
	"Historical", "Biography", "Technical", "Poetry", "Drama", "Comedy",
}

var bookTopics = []string{
	"Dragons", "Space", "Magic", "Detective", "Love", "War", "Time Travel",
	"Artificial Intelligence", "Ancient Civilizations", "Vampires", "Zombies",
	"Robots", "Pirates", "Ninjas", "Superheroes", "Mythology", "Ocean",
	"Mountain", "Desert", "Forest", "Castle", "Laboratory", "City", "Village",
}

var titleTemplates = []func(genre, topic string) string{
	func(g, t string) string { return fmt.Sprintf("The %s of %s", g, t) },
	func(g, t string) string { return fmt.Sprintf("%s: A %s Story", t, g) },
	func(g, t string) string { return fmt.Sprintf("The %s %s", t, g) },
	func(g, t string) string { return fmt.Sprintf("%s in %s", g, t) },
	func(g, t string) string { return fmt.Sprintf("Tales of %s", t) },
	func(g, t string) string { return fmt.Sprintf("The Last %s", t) },
	func(g, t string) string { return fmt.Sprintf("Journey to %s", t) },
	func(g, t string) string { return fmt.Sprintf("Chronicles of %s", t) },
	func(g, t string) string { return fmt.Sprintf("The %s Conspiracy", t) },
	func(g, t string) string { return fmt.Sprintf("Secrets of %s", t) },
}

// TitleAllocator hands out book titles that are unique across the entire run,
// shared by every owner. Allocation is a two-branch strategy: a bounded number
// of random probes against the used set, then a counter-based fallback that is
// unique by construction. It never loops unbounded and never fails.
//
// An allocator is scoped to one build; its used set must not be shared across
// concurrent runs.
type TitleAllocator struct {
	rng    *rand.Rand
	genres []string
	topics []string
	used   map[string]struct{}
}

// NewTitleAllocator creates an allocator over the default genre and topic
// pools with an empty used set.
func NewTitleAllocator(rng *rand.Rand) *TitleAllocator {
	return &TitleAllocator{
		rng:    rng,
		genres: bookGenres,
		topics: bookTopics,
		used:   make(map[string]struct{}),
	}
}

// Allocate returns a title absent from every previous Allocate call of this
// run. userIndex is the current user's position in the population loop and
// booksSoFar the running total of books created; together they make the
// fallback branch collision-proof, since booksSoFar strictly increases
// between calls.
func (a *TitleAllocator) Allocate(userIndex, booksSoFar int) string {
	title, ok := a.probe()
	if !ok {
		title = a.fallback(userIndex, booksSoFar)
	}
	a.used[title] = struct{}{}
	return title
}

// Used reports how many titles the allocator has handed out.
func (a *TitleAllocator) Used() int { return len(a.used) }

// probe samples up to maxTitleAttempts genre/topic/template combinations and
// accepts the first title not yet in the used set.
func (a *TitleAllocator) probe() (string, bool) {
	for attempt := 0; attempt < maxTitleAttempts; attempt++ {
		genre := a.genres[a.rng.IntN(len(a.genres))]
		topic := a.topics[a.rng.IntN(len(a.topics))]
		title := titleTemplates[a.rng.IntN(len(titleTemplates))](genre, topic)
		if _, taken := a.used[title]; !taken {
			return title, true
		}
	}
	return "", false
}

// fallback synthesizes a title from a fresh random integer plus positional
// counters already unique within the run. The random part is cosmetic; the
// counters alone guarantee uniqueness.
func (a *TitleAllocator) fallback(userIndex, booksSoFar int) string {
	return fmt.Sprintf("Book %d-%d-%d", 10000+a.rng.IntN(90000), userIndex, booksSoFar)
}
