// Package sequence normalizes and checks residue strings before alignment.
// The alignment engine itself never validates; these helpers are opt-in.
package sequence

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Alphabet names a residue set.
type Alphabet string

const (
	Any     Alphabet = "any"
	DNA     Alphabet = "dna"
	IUPAC   Alphabet = "iupac"
	Protein Alphabet = "protein"
)

// Alphabets lists the accepted names in display order.
var Alphabets = []Alphabet{Any, DNA, IUPAC, Protein}

var residues = map[Alphabet]string{
	DNA:     "ACGT",
	IUPAC:   "ACGTURYSWKMBDHVN",
	Protein: "ACDEFGHIKLMNPQRSTVWYBZXUO*",
}

var (
	ErrEmpty           = errors.New("empty sequence")
	ErrInvalidResidue  = errors.New("invalid residue")
	ErrUnknownAlphabet = errors.New("unknown alphabet")
)

// ParseAlphabet resolves a case-insensitive alphabet name.
func ParseAlphabet(name string) (Alphabet, error) {
	a := Alphabet(strings.ToLower(strings.TrimSpace(name)))
	if a == Any {
		return a, nil
	}
	if _, ok := residues[a]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownAlphabet, name, alphabetList())
}

func alphabetList() string {
	ss := make([]string, len(Alphabets))
	for i, a := range Alphabets {
		ss[i] = string(a)
	}
	return strings.Join(ss, " | ")
}

// Normalize removes spaces/quotes and uppercases residues.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate reports the first residue of s that is not in alphabet.
// Residues are matched case-insensitively so soft-masked (lowercase) input
// passes. Any accepts everything, including the empty string.
func Validate(s string, alphabet Alphabet) error {
	if alphabet == Any || alphabet == "" {
		return nil
	}
	set, ok := residues[alphabet]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownAlphabet, alphabet)
	}
	if s == "" {
		return ErrEmpty
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if strings.IndexByte(set, c) < 0 {
			return fmt.Errorf("%w %q at %d; allowed (%s): %s", ErrInvalidResidue, s[i], i+1, alphabet, set)
		}
	}
	return nil
}

// Prepare optionally normalizes s and then validates it against alphabet.
func Prepare(s string, normalize bool, alphabet Alphabet) (string, error) {
	if normalize {
		s = Normalize(s)
	}
	if err := Validate(s, alphabet); err != nil {
		return "", err
	}
	return s, nil
}
