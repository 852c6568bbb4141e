package testsupport

import "lexweave/internal/libran"

// NotedEntry builds a modern-only entry whose note cites a donor language.
func NotedEntry(english, modern, pos, notes string) libran.Entry {
	return libran.Entry{
		English: english,
		Modern:  libran.StringForm(modern),
		POS:     pos,
		Notes:   notes,
	}
}

// EssentialEntries covers the full essential phrasebook with donor-noted,
// collision-free, balanced entries, so the set clears the default gate with
// a full score.
func EssentialEntries() []libran.Entry {
	return []libran.Entry{
		NotedEntry("hello", "salaë", "int", "Rom. salut, clipped"),
		NotedEntry("goodbye", "adivë", "int", "Rom. adio"),
		NotedEntry("yes", "itë", "int", "Lat. ita"),
		NotedEntry("no", "nulë", "int", "Lat. nullus, worn down"),
		NotedEntry("please", "kerem", "int", "Hun. kérem, flattened"),
		NotedEntry("thank you", "köszi", "int", "Hun. köszönöm, clipped"),
		NotedEntry("friend", "amicë", "n", "Lat. amicus"),
		NotedEntry("help", "segit", "v", "Hun. segít, flattened"),
		NotedEntry("water", "aquë", "n", "Lat. aqua"),
		NotedEntry("food", "cibë", "n", "Lat. cibus"),
		NotedEntry("fire", "flamë", "n", "Lat. flamma"),
		NotedEntry("home", "domë", "n", "Lat. domus"),
		NotedEntry("come", "veni", "v", "Lat. venire, clipped"),
		NotedEntry("go", "mergë", "v", "Rom. merge"),
		NotedEntry("good", "bonë", "adj", "Lat. bonus"),
		NotedEntry("bad", "malë", "adj", "Lat. malus"),
	}
}

// NounOnlyEntries misses the whole essential phrasebook and carries nothing
// but nouns, so the verb floor, the noun cap, and phrasebook coverage hold
// the set well under the default gate.
func NounOnlyEntries() []libran.Entry {
	return []libran.Entry{
		NotedEntry("mountain", "montë", "n", "Lat. mons"),
		NotedEntry("river", "fluvë", "n", "Lat. fluvius"),
		NotedEntry("stone", "petrë", "n", "Lat. petra"),
		NotedEntry("tree", "arborë", "n", "Lat. arbor"),
	}
}
