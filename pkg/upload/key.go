package upload

import "strings"

// KeySeparator joins the key prefix and the file name
const KeySeparator = "/"

// ObjectKey builds the destination key: the percent-encoded prefix, a
// separator, then the file name as given.
func ObjectKey(prefix, fileName string) string {
	return EscapeComponent(prefix) + KeySeparator + fileName
}

// EscapeComponent percent-encodes s the way JavaScript's encodeURIComponent
// does: everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is escaped as UTF-8 bytes.
func EscapeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
