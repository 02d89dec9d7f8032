package domain

import "slices"

// CompiledSet is the deduplicated union of every source's domains.
type CompiledSet struct {
	domains map[string]struct{}
	// Raw is the number of entries before deduplication.
	Raw int
}

// NewCompiledSet builds a set from already-unique domains.
func NewCompiledSet(domains []string) CompiledSet {
	set := CompiledSet{domains: make(map[string]struct{}, len(domains))}
	for _, d := range domains {
		set.domains[d] = struct{}{}
	}
	set.Raw = len(domains)
	return set
}

// Add inserts a domain and counts it towards Raw.
func (c *CompiledSet) Add(domain string) {
	if c.domains == nil {
		c.domains = make(map[string]struct{})
	}
	c.domains[domain] = struct{}{}
	c.Raw++
}

// Remove deletes a domain, reporting whether it was present.
func (c *CompiledSet) Remove(domain string) bool {
	if _, ok := c.domains[domain]; !ok {
		return false
	}
	delete(c.domains, domain)
	return true
}

// Insert adds a domain without counting it towards Raw, reporting whether it was new.
func (c *CompiledSet) Insert(domain string) bool {
	if c.domains == nil {
		c.domains = make(map[string]struct{})
	}
	if _, ok := c.domains[domain]; ok {
		return false
	}
	c.domains[domain] = struct{}{}
	return true
}

// Contains reports whether the domain is in the set.
func (c CompiledSet) Contains(domain string) bool {
	_, ok := c.domains[domain]
	return ok
}

// Len returns the number of distinct domains.
func (c CompiledSet) Len() int {
	return len(c.domains)
}

// Sorted returns the domains in lexical order.
func (c CompiledSet) Sorted() []string {
	out := make([]string, 0, len(c.domains))
	for d := range c.domains {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}
