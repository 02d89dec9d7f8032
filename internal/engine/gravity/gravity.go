// Package gravity compiles the per-source domain lists into one deduplicated set.
package gravity

import "go.trai.ch/gravity/internal/core/domain"

// Compile unions the lists by exact string equality. The returned set's Raw
// field is the total number of entries before deduplication.
func Compile(lists ...[]string) domain.CompiledSet {
	var set domain.CompiledSet
	for _, l := range lists {
		for _, d := range l {
			set.Add(d)
		}
	}
	return set
}

// CompileSources compiles the cached domains of every source.
func CompileSources(sources []domain.Source) domain.CompiledSet {
	lists := make([][]string, len(sources))
	for i, src := range sources {
		lists[i] = src.Domains()
	}
	return Compile(lists...)
}
