// Package model defines the core data structures for the pulsecheck assessment engine.
package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// AnswerKind identifies which shape an Answer carries.
type AnswerKind int

// Answer kinds.
const (
	AnswerText AnswerKind = iota
	AnswerNumber
	AnswerMulti
)

// Answer holds one respondent answer: a text value, a numeric value,
// or a set of selected option values.
type Answer struct {
	text   string
	values []string
	number float64
	kind   AnswerKind
}

// TextAnswer creates a single text-valued answer.
func TextAnswer(s string) Answer {
	return Answer{kind: AnswerText, text: s}
}

// NumberAnswer creates a numeric answer.
func NumberAnswer(n float64) Answer {
	return Answer{kind: AnswerNumber, number: n}
}

// MultiAnswer creates a multi-select answer. The selection order is preserved.
func MultiAnswer(values ...string) Answer {
	return Answer{kind: AnswerMulti, values: values}
}

// Kind returns the answer's shape.
func (a Answer) Kind() AnswerKind {
	return a.kind
}

// Text returns the answer as display text. Numeric answers are formatted;
// multi-select answers are joined with commas.
func (a Answer) Text() string {
	switch a.kind {
	case AnswerNumber:
		return strconv.FormatFloat(a.number, 'f', -1, 64)
	case AnswerMulti:
		return strings.Join(a.values, ",")
	default:
		return a.text
	}
}

// Number parses the answer as a float64. Text answers are parsed after
// trimming whitespace; a trailing "+" (as in "20+") is tolerated.
func (a Answer) Number() (float64, bool) {
	switch a.kind {
	case AnswerNumber:
		return a.number, true
	case AnswerText:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(a.text), "+"))
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Values returns the selected option values. Single-valued answers are
// returned as a one-element slice so callers can iterate uniformly.
func (a Answer) Values() []string {
	switch a.kind {
	case AnswerMulti:
		return a.values
	case AnswerText:
		if a.text == "" {
			return nil
		}
		return []string{a.text}
	default:
		return []string{a.Text()}
	}
}

// Contains reports whether the answer includes the given option value.
func (a Answer) Contains(value string) bool {
	for _, v := range a.Values() {
		if v == value {
			return true
		}
	}
	return false
}

// AnswerSet maps question identifiers to answers. It is owned by the caller
// and treated as read-only input for the lifetime of one assessment run.
type AnswerSet map[string]Answer

// Text returns the text form of the answer at key, if present.
func (s AnswerSet) Text(key string) (string, bool) {
	a, ok := s[key]
	if !ok {
		return "", false
	}
	return a.Text(), true
}

// Number returns the numeric form of the answer at key, if present and parseable.
func (s AnswerSet) Number(key string) (float64, bool) {
	a, ok := s[key]
	if !ok {
		return 0, false
	}
	return a.Number()
}

// Values returns the selected option values at key, if present.
func (s AnswerSet) Values(key string) ([]string, bool) {
	a, ok := s[key]
	if !ok {
		return nil, false
	}
	return a.Values(), true
}

// Has reports whether an answer exists at key.
func (s AnswerSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Fingerprint returns a deterministic SHA-256 hex digest of the answer set.
// Keys are sorted so that map iteration order never leaks into the digest.
func (s AnswerSet) Fingerprint() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		a := s[k]
		fmt.Fprintf(h, "%s=%d:%s;", k, a.kind, a.Text())
	}
	return hex.EncodeToString(h.Sum(nil))
}
