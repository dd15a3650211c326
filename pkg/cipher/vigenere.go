package cipher

import (
	"strings"

	"github.com/pkg/errors"
)

// NormalizeKeyword upper-cases keyword and checks that only A-Z remain.
func NormalizeKeyword(keyword string) (string, error) {
	upper := strings.ToUpper(keyword)
	for i, r := range upper {
		if latinIndex(r) == -1 {
			return "", errors.Wrapf(ErrInvalidKeyword, "keyword %q has %q at byte %d", keyword, r, i)
		}
	}

	return upper, nil
}

// Vigenere encodes or decodes text with keyword over LatinUpper.
//
// An empty keyword returns text unchanged. Otherwise the output is upper-cased and non A-Z characters are copied in
// place without advancing the keyword.
func Vigenere(text, keyword string, direction Direction) (string, error) {
	if keyword == "" {
		return text, nil
	}

	key, err := NormalizeKeyword(keyword)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(text))

	keyIdx := 0
	for _, r := range strings.ToUpper(text) {
		charIdx := latinIndex(r)
		if charIdx == -1 {
			out.WriteRune(r)

			continue
		}

		shift := latinIndex(rune(key[keyIdx]))
		out.WriteByte(LatinUpper[mod(charIdx+direction.sign()*shift, latinSize)])
		keyIdx = (keyIdx + 1) % len(key)
	}

	return out.String(), nil
}
