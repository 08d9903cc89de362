package parser

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"clientbook/internal/apperr"
)

// Prefix marks the start of a named argument, e.g. "i/0".
type Prefix string

const (
	PrefixName        Prefix = "n/"
	PrefixPhone       Prefix = "p/"
	PrefixEmail       Prefix = "e/"
	PrefixAddress     Prefix = "a/"
	PrefixInsuranceID Prefix = "i/"
	PrefixClaimID     Prefix = "c/"
	PrefixAmount      Prefix = "amt/"
)

const (
	CodeDuplicatePrefix    = "DUPLICATE_PREFIX"
	MessageDuplicatePrefix = "Multiple values specified for the following single-valued field(s): %s"
)

// ArgumentMultimap holds the preamble and every value seen for each prefix.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble is the text before the first recognised prefix.
func (a ArgumentMultimap) Preamble() string { return a.preamble }

// Value returns the last value given for p.
func (a ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func (a ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), a.values[p]...)
}

// Present reports whether every prefix was given at least once.
func (a ArgumentMultimap) Present(ps ...Prefix) bool {
	for _, p := range ps {
		if len(a.values[p]) == 0 {
			return false
		}
	}
	return true
}

// VerifyNoDuplicates fails if any of ps was given more than once.
func (a ArgumentMultimap) VerifyNoDuplicates(ps ...Prefix) error {
	var dups []string
	for _, p := range ps {
		if len(a.values[p]) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return apperr.NewFormat(CodeDuplicatePrefix, fmt.Sprintf(MessageDuplicatePrefix, strings.Join(dups, " ")), "")
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// follows whitespace, so "a/b" inside a value is left alone.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	s := " " + args
	var positions []prefixPosition
	for _, p := range prefixes {
		for from := 0; ; {
			i := strings.Index(s[from:], string(p))
			if i < 0 {
				break
			}
			start := from + i
			if r, _ := utf8.DecodeLastRuneInString(s[:start]); unicode.IsSpace(r) {
				positions = append(positions, prefixPosition{prefix: p, start: start})
			}
			from = start + len(p)
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	out := ArgumentMultimap{values: map[Prefix][]string{}}
	if len(positions) == 0 {
		out.preamble = strings.TrimSpace(s)
		return out
	}
	out.preamble = strings.TrimSpace(s[:positions[0].start])
	for i, pos := range positions {
		end := len(s)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		value := strings.TrimSpace(s[pos.start+len(pos.prefix) : end])
		out.values[pos.prefix] = append(out.values[pos.prefix], value)
	}
	return out
}
