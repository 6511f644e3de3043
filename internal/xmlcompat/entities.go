// Package xmlcompat bridges flatxml's flat Node records to the
// standard library's encoding/xml token model, so callers that already
// speak xml.Token (template engines, xml.Unmarshal-based pipelines) can
// sit on top of a flatxml parse without rewriting their consumer side.
//
// Grounded on the teacher's decode.go/fastxml.go (entity table and
// decoder) and token.go (the Token-to-xml.Token XML() conversions),
// adapted to read from a []flatxml.Node buffer instead of the
// teacher's own scanner tokens.
package xmlcompat

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// entities is xml.HTMLEntity with the five predefined XML entities
// added, mirroring (encoding/xml).Decoder.Entity's hardcoded defaults.
var entities = make(map[string]string, len(xml.HTMLEntity)+5)

func init() {
	for k, v := range xml.HTMLEntity {
		entities[k] = v
	}
	entities["lt"] = "<"
	entities["gt"] = ">"
	entities["amp"] = "&"
	entities["apos"] = "'"
	entities["quot"] = `"`
}

// DecodeEntities resolves XML character/entity references in s, the
// way flatxml's core deliberately does not (spec's core leaves Text
// and Attr values undecoded; decoding is this package's job).
//
// Walks s by entity reference rather than by byte: each iteration jumps
// straight from one '&' to the next via strings.IndexByte, so plain
// runs of text between references are appended to the builder in one
// slice instead of copied byte-by-byte. The entities map (built once in
// init from xml.HTMLEntity plus the five predefined names) is the only
// lookup path for a named reference — there is no separate fast case
// for lt/gt/amp/apos/quot, since the map already answers those.
func DecodeEntities(s string) (string, error) {
	amp := strings.IndexByte(s, '&')
	if amp == -1 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		b.WriteString(s[:amp])
		s = s[amp+1:]

		semi := strings.IndexByte(s, ';')
		if semi == -1 {
			return "", errors.New("xmlcompat: expected ';' to end XML entity, not found")
		}
		ref, rest := s[:semi], s[semi+1:]

		if strings.HasPrefix(ref, "#") {
			base := 10
			digits := ref[1:]
			if strings.HasPrefix(digits, "x") {
				base = 16
				digits = digits[1:]
			}
			num, err := strconv.ParseInt(digits, base, 32)
			if err != nil {
				return "", fmt.Errorf("xmlcompat: failed to decode %q: %w", digits, err)
			}
			b.WriteRune(rune(num))
		} else {
			decoded, ok := entities[ref]
			if !ok {
				return "", fmt.Errorf("xmlcompat: unknown XML entity %q", ref)
			}
			b.WriteString(decoded)
		}

		s = rest
		amp = strings.IndexByte(s, '&')
		if amp == -1 {
			b.WriteString(s)
			return b.String(), nil
		}
	}
}
