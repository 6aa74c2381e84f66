package jsast

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

// StringValue returns the compile-time value of a string literal, or of a
// template literal without substitutions. String literals yield their
// cooked value; templates yield their raw text with CR and CRLF line ends
// read as LF.
//
// Values are UTF-16 code unit sequences encoded as WTF-8: a lone surrogate
// keeps its own three-byte form instead of collapsing into U+FFFD, so
// labels that differ as JavaScript strings differ here too.
func StringValue(n *sitter.Node, src []byte) (string, bool) {
	switch n.Type() {
	case NodeString:
		text := n.Content(src)
		if len(text) < 2 {
			return "", false
		}
		return cook(text[1 : len(text)-1]), true
	case NodeTemplateString:
		for _, child := range namedChildren(n) {
			if child.Type() == NodeTemplateSubstitution {
				return "", false
			}
		}
		text := n.Content(src)
		if len(text) < 2 {
			return "", false
		}
		return normalizeLineEnds(text[1 : len(text)-1]), true
	default:
		return "", false
	}
}

// cook decodes the escape sequences of a string literal body. Work happens
// on UTF-16 code units so that escaped surrogate pairs combine.
func cook(body string) string {
	if !strings.Contains(body, `\`) {
		return body
	}

	var units []uint16

	for i := 0; i < len(body); {
		if body[i] != '\\' {
			r, size := utf8.DecodeRuneInString(body[i:])
			units = utf16.AppendRune(units, r)
			i += size
			continue
		}

		i++ // backslash
		if i >= len(body) {
			break
		}

		r, size := utf8.DecodeRuneInString(body[i:])
		i += size

		switch r {
		case 'n':
			units = append(units, '\n')
		case 't':
			units = append(units, '\t')
		case 'r':
			units = append(units, '\r')
		case 'b':
			units = append(units, '\b')
		case 'f':
			units = append(units, '\f')
		case 'v':
			units = append(units, '\v')
		case '\r':
			// Line continuation; \r\n counts as one terminator.
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\n', '\u2028', '\u2029':
			// Line continuation.
		case 'x':
			if v, ok := hexValue(body, i, 2); ok {
				units = append(units, uint16(v))
				i += 2
			} else {
				units = append(units, 'x')
			}
		case 'u':
			v, n := unicodeEscape(body[i:])
			if n == 0 {
				units = append(units, 'u')
				break
			}
			i += n
			if v > 0xFFFF {
				units = utf16.AppendRune(units, rune(v))
			} else {
				units = append(units, uint16(v))
			}
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, n := legacyOctal(body[i-1:])
			units = append(units, uint16(v))
			i += n - 1
		default:
			units = utf16.AppendRune(units, r)
		}
	}

	return wtf8(units)
}

// wtf8 encodes UTF-16 code units, pairing surrogates where they form a
// pair and encoding lone ones like any other BMP code point.
func wtf8(units []uint16) string {
	buf := make([]byte, 0, len(units))

	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		if utf16.IsSurrogate(u) && i+1 < len(units) {
			if r := utf16.DecodeRune(u, rune(units[i+1])); r != utf8.RuneError {
				buf = utf8.AppendRune(buf, r)
				i++
				continue
			}
		}
		if utf16.IsSurrogate(u) {
			buf = append(buf, 0xE0|byte(u>>12), 0x80|byte(u>>6)&0x3F, 0x80|byte(u)&0x3F)
			continue
		}
		buf = utf8.AppendRune(buf, u)
	}

	return string(buf)
}

func normalizeLineEnds(raw string) string {
	if !strings.Contains(raw, "\r") {
		return raw
	}

	return strings.ReplaceAll(strings.ReplaceAll(raw, "\r\n", "\n"), "\r", "\n")
}

func hexValue(s string, at, n int) (uint64, bool) {
	if at+n > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[at:at+n], 16, 32)
	if err != nil {
		return 0, false
	}

	return v, true
}

// unicodeEscape decodes the part after \u: XXXX or {X...}. It returns the
// code point and the number of bytes consumed, 0 when malformed.
func unicodeEscape(s string) (uint64, int) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0
		}
		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0
		}
		return v, end + 1
	}

	v, ok := hexValue(s, 0, 4)
	if !ok {
		return 0, 0
	}

	return v, 4
}

// legacyOctal decodes a sloppy-mode octal escape starting at s[0].
// Escapes starting with 0-3 take up to three digits, 4-7 up to two.
func legacyOctal(s string) (uint64, int) {
	limit := 2
	if s[0] <= '3' {
		limit = 3
	}

	n := 1
	for n < limit && n < len(s) && s[n] >= '0' && s[n] <= '7' {
		n++
	}

	v, _ := strconv.ParseUint(s[:n], 8, 16)

	return v, n
}
