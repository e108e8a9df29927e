package bytebuf

import (
	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// charsets maps lowercase names to character encodings so wire
// definitions can reference a charset by name. A concurrent map keeps
// registration safe from init code on multiple goroutines; buffers
// themselves stay single-threaded.
var charsets = xsync.NewMap[string, encoding.Encoding]()

func init() {
	RegisterCharset("utf-8", unicode.UTF8)
	RegisterCharset("latin-1", charmap.ISO8859_1)
	RegisterCharset("utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))
	RegisterCharset("utf-16be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM))
}

// RegisterCharset makes an encoding available under the given name,
// replacing any previous registration.
func RegisterCharset(name string, enc encoding.Encoding) {
	charsets.Store(name, enc)
}

// LookupCharset returns the encoding registered under name.
func LookupCharset(name string) (encoding.Encoding, bool) {
	return charsets.Load(name)
}

// decodeCharset turns stored bytes into a string under enc. A nil
// encoding is raw passthrough, the UTF-8 convention.
func decodeCharset(enc encoding.Encoding, p []byte) (string, error) {
	if enc == nil {
		return string(p), nil
	}
	out, err := enc.NewDecoder().Bytes(p)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// encodeCharset turns a string into its stored bytes under enc.
func encodeCharset(enc encoding.Encoding, s string) ([]byte, error) {
	if enc == nil {
		return []byte(s), nil
	}
	return enc.NewEncoder().Bytes([]byte(s))
}
