// Package cipher implements the two classical substitution ciphers used by a chain.
//
// Vigenere shifts every letter of the text by the matching letter of a repeating keyword. It always works on the
// 26 uppercase Latin letters: the text is upper-cased first and anything that is not A-Z is copied through without
// consuming a keyword letter.
//
// Caesar shifts every character by a constant amount inside an ordered, caller supplied alphabet. Characters are
// looked up verbatim, so the alphabet decides whether case matters, and characters outside the alphabet are copied
// through.
//
// Both functions treat an empty keyword or alphabet as a passthrough and return the text untouched. Neither offers
// any security: they are teaching ciphers.
package cipher
