package models

import "strings"

// ExclusionRules are the two per-round document filters: exact-title
// exclusions and prefix exclusions. Documents matching either are never
// transmitted in either direction. Rules are re-read fresh each round.
type ExclusionRules struct {
	Titles   map[string]struct{}
	Prefixes []string
}

// ParseExclusionRules parses the two config tiddler texts, each a
// space-separated list of titles where multi-word titles are wrapped in
// double brackets ("[[My Title]] Draft").
func ParseExclusionRules(titlesText, prefixesText string) ExclusionRules {
	titles := ParseTitleList(titlesText)
	rules := ExclusionRules{
		Titles:   make(map[string]struct{}, len(titles)),
		Prefixes: ParseTitleList(prefixesText),
	}
	for _, title := range titles {
		rules.Titles[title] = struct{}{}
	}
	return rules
}

// ParseTitleList splits a space-separated bracketed title list, stripping
// the [[ ]] wrappers. Empty entries are dropped so an empty config tiddler
// excludes nothing.
func ParseTitleList(text string) []string {
	fields := strings.Fields(text)
	titles := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSuffix(strings.TrimPrefix(f, "[["), "]]")
		if f != "" {
			titles = append(titles, f)
		}
	}
	return titles
}

// Excludes reports whether title matches an exact exclusion entry or starts
// with an excluded prefix.
func (r ExclusionRules) Excludes(title string) bool {
	if _, ok := r.Titles[title]; ok {
		return true
	}
	for _, prefix := range r.Prefixes {
		if strings.HasPrefix(title, prefix) {
			return true
		}
	}
	return false
}

// Filter returns the tiddlers not excluded by the rules, preserving order.
func (r ExclusionRules) Filter(tiddlers []TiddlerFields) []TiddlerFields {
	kept := make([]TiddlerFields, 0, len(tiddlers))
	for _, t := range tiddlers {
		if !r.Excludes(t.Title()) {
			kept = append(kept, t)
		}
	}
	return kept
}
