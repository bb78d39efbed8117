package core

import "strings"

// Token classification. All functions here are pure and total; malformed
// input simply classifies as "not an option".

// isShortOption reports whether tok has the shape of a short option (-x).
func isShortOption(tok string) bool {
	return len(tok) > 1 && tok[0] == '-' && tok[1] != '-'
}

// isLongOption reports whether tok has the shape of a long option (--xyz).
func isLongOption(tok string) bool {
	return len(tok) > 2 && tok[0] == '-' && tok[1] == '-' && tok[2] != '-'
}

// isOption reports whether tok is option-shaped, short or long.
func isOption(tok string) bool {
	return isShortOption(tok) || isLongOption(tok)
}

// optionToName strips the leading dashes from an option token. The second
// return is false if tok is not option-shaped.
func optionToName(tok string) (string, bool) {
	switch {
	case isLongOption(tok):
		return tok[2:], true
	case isShortOption(tok):
		return tok[1:], true
	}
	return "", false
}

// NameToOption renders the canonical token for an option name: -x for a
// single character, --xyz otherwise. An empty name renders as nothing.
// The usage renderer uses it to print canonical forms.
func NameToOption(name string) string {
	switch len(name) {
	case 0:
		return ""
	case 1:
		return "-" + name
	}
	return "--" + name
}

// splitOption splits tok on the first '='. hasValue is false when no '='
// is present; a trailing '=' yields an empty value with hasValue true.
func splitOption(tok string) (head, value string, hasValue bool) {
	if i := strings.IndexByte(tok, '='); i >= 0 {
		return tok[:i], tok[i+1:], true
	}
	return tok, "", false
}

// splitArgs splits tokens at the first bare "--" marker. Everything after
// the marker is returned in tail and must never be treated as an option.
// Without a marker, head is the whole input and tail is empty.
func splitArgs(tokens []string) (head, tail []string) {
	for i, tok := range tokens {
		if tok == "--" {
			return tokens[:i], tokens[i+1:]
		}
	}
	return tokens, nil
}
