// Package rules decides what happens to new windows based on their WM_CLASS
// and title: which group they go to, whether they float, whether they are
// sticky.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/groupwm/groupwm/hook"
)

// RegexpPrefix marks a Match field as a regular expression rather than a
// literal.
const RegexpPrefix = "re:"

// Match selects clients. Every non-empty field must match. Class matches
// either of the two WM_CLASS strings; Instance matches only the first.
type Match struct {
	Class    string `toml:"class,omitempty"`
	Instance string `toml:"instance,omitempty"`
	Title    string `toml:"title,omitempty"`
}

func (m Match) IsZero() bool {
	return m.Class == "" && m.Instance == "" && m.Title == ""
}

func (m Match) String() string {
	var parts []string
	if m.Class != "" {
		parts = append(parts, "class="+m.Class)
	}
	if m.Instance != "" {
		parts = append(parts, "instance="+m.Instance)
	}
	if m.Title != "" {
		parts = append(parts, "title="+m.Title)
	}
	return "Match(" + strings.Join(parts, ", ") + ")"
}

type pattern struct {
	literal string
	re      *regexp.Regexp
}

func compilePattern(s string) (pattern, error) {
	if !strings.HasPrefix(s, RegexpPrefix) {
		return pattern{literal: s}, nil
	}
	re, err := regexp.Compile(s[len(RegexpPrefix):])
	if err != nil {
		return pattern{}, err
	}
	return pattern{re: re}, nil
}

func (p pattern) empty() bool {
	return p.re == nil && p.literal == ""
}

func (p pattern) match(s string) bool {
	if p.re != nil {
		return p.re.MatchString(s)
	}
	return p.literal == s
}

// compiled is a Match with its patterns compiled.
type compiled struct {
	src      Match
	class    pattern
	instance pattern
	title    pattern
}

func (m Match) compile() (compiled, error) {
	if m.IsZero() {
		return compiled{}, fmt.Errorf("empty match")
	}
	var (
		c   = compiled{src: m}
		err error
	)
	if c.class, err = compilePattern(m.Class); err != nil {
		return compiled{}, fmt.Errorf("invalid class pattern: %w", err)
	}
	if c.instance, err = compilePattern(m.Instance); err != nil {
		return compiled{}, fmt.Errorf("invalid instance pattern: %w", err)
	}
	if c.title, err = compilePattern(m.Title); err != nil {
		return compiled{}, fmt.Errorf("invalid title pattern: %w", err)
	}
	return c, nil
}

func (c compiled) match(client hook.Client) bool {
	wc := client.Class()
	if !c.class.empty() && !c.class.match(wc.Class) && !c.class.match(wc.Instance) {
		return false
	}
	if !c.instance.empty() && !c.instance.match(wc.Instance) {
		return false
	}
	if !c.title.empty() && !c.title.match(client.Title()) {
		return false
	}
	return true
}

// Set matches a client if any of its Matches does. The zero Set matches
// nothing.
type Set struct {
	matches []compiled
}

// Compile compiles ms into a Set.
func Compile(ms []Match) (Set, error) {
	s := Set{matches: make([]compiled, 0, len(ms))}
	for _, m := range ms {
		c, err := m.compile()
		if err != nil {
			return Set{}, fmt.Errorf("%v: %w", m, err)
		}
		s.matches = append(s.matches, c)
	}
	return s, nil
}

func (s Set) Len() int {
	return len(s.matches)
}

// Match reports whether any match in s selects c.
func (s Set) Match(c hook.Client) bool {
	_, ok := s.First(c)
	return ok
}

// First returns the first Match in s selecting c.
func (s Set) First(c hook.Client) (Match, bool) {
	if c == nil {
		return Match{}, false
	}
	for _, m := range s.matches {
		if m.match(c) {
			return m.src, true
		}
	}
	return Match{}, false
}
