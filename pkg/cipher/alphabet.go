package cipher

// Alphabet is the ordered index space of a Caesar step.
type Alphabet string

// LatinUpper is the default alphabet, and the only one Vigenere uses.
const LatinUpper Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const latinSize = len(LatinUpper)

// Runes returns the alphabet characters in order.
func (a Alphabet) Runes() []rune {
	return []rune(string(a))
}

// Len is the number of characters, not bytes.
func (a Alphabet) Len() int {
	return len(a.Runes())
}

// Index returns the position of r, or -1 when r is absent.
// With duplicated characters the first occurrence wins.
func (a Alphabet) Index(r rune) int {
	for i, c := range a.Runes() {
		if c == r {
			return i
		}
	}

	return -1
}

// HasDuplicates reports whether some character appears more than once,
// in which case decoding is ambiguous.
func (a Alphabet) HasDuplicates() bool {
	seen := make(map[rune]struct{})
	for _, r := range string(a) {
		if _, ok := seen[r]; ok {
			return true
		}
		seen[r] = struct{}{}
	}

	return false
}

// indexTable maps each character to its first position.
func (a Alphabet) indexTable() ([]rune, map[rune]int) {
	runes := a.Runes()
	table := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := table[r]; !ok {
			table[r] = i
		}
	}

	return runes, table
}

func latinIndex(r rune) int {
	if r < 'A' || r > 'Z' {
		return -1
	}

	return int(r - 'A')
}

// mod is the mathematical modulo, never negative for a positive n.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}
