// Package word parses and formats words over group generators.
//
// A [Word] is an ordered sequence of [Term] values, each a generator raised
// to a non-zero integer exponent. Its letter stream ([Word.Letters]) expands
// every term into |exponent| unit steps carrying the exponent's sign.
//
// # Grammar
//
// Generators are a letter, optionally followed by "_" and a one-character
// index or a brace-delimited index. Exponents are optional, written as "^"
// followed by one digit or a brace-delimited signed integer:
//
//	a          a^2        a^{-3}
//	s_1        s_{12}^{-1}
//	x_1^2*x_2 (x_3^{4})
//
// Spaces, "*" and parentheses are ignored between tokens but not inside
// braces; adjacent tokens multiply left to right. Braced exponents may carry
// an explicit sign and are bounded by [MaxExponent] in absolute value. The literal input "1" is the identity word. Names are normalized
// so that "g_{1}" and "g_1" both parse to the generator "g_1".
//
// Malformed input yields an [errors.ParseError] whose Offset indexes the
// original text in runes.
package word
