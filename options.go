package mbe

import (
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/ahtheerr/mbego/internal"
)

// parseConfig is the resolved set of parse-time options (§6.3).
type parseConfig struct {
	encodingName string
	decoder      *encoding.Decoder
}

func defaultParseConfig() *parseConfig {
	return &parseConfig{
		encodingName: internal.EncodingUTF8,
		decoder:      internal.Decoder(internal.EncodingUTF8),
	}
}

// ParseOption configures Parse. The only recognised option is
// WithEncoding (§6.3); the type exists so future options can be
// added without breaking Parse's signature.
type ParseOption func(*parseConfig) error

// WithEncoding selects the default string decoder. Recognised values
// are "utf-8" (the default) and "latin1"; any other value is
// rejected when the option is applied, since the format defines no
// encoding-detection mechanism (§9 Open Questions) and a silently
// ignored typo would produce mojibake with no diagnostic.
func WithEncoding(name string) ParseOption {
	return func(c *parseConfig) error {
		switch name {
		case internal.EncodingUTF8, internal.EncodingLatin1:
			c.encodingName = name
			c.decoder = internal.Decoder(name)
			return nil
		default:
			return fmt.Errorf("mbe: unrecognised encoding %q (want %q or %q)", name, internal.EncodingUTF8, internal.EncodingLatin1)
		}
	}
}
