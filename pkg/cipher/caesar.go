package cipher

import "strings"

// Caesar shifts every character of text found in alphabet by shift positions.
//
// An empty alphabet returns text unchanged. Characters are matched verbatim and those missing from alphabet are
// copied through. Any shift is accepted: it is reduced with a true modulo so large and negative values wrap.
func Caesar(text string, shift int, alphabet Alphabet, direction Direction) string {
	if alphabet == "" {
		return text
	}

	runes, table := alphabet.indexTable()
	size := len(runes)
	effective := mod(direction.sign()*mod(shift, size), size)

	var out strings.Builder
	out.Grow(len(text))

	for _, r := range text {
		idx, ok := table[r]
		if !ok {
			out.WriteRune(r)

			continue
		}

		out.WriteRune(runes[(idx+effective)%size])
	}

	return out.String()
}
