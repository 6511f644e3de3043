package flatxml

import "unicode"

// nameStartTable and nameExtraTable hold the non-ASCII scalar ranges
// from the XML 1.0 NameStartChar / NameChar productions (spec §4.2).
// ASCII is special-cased in IsNameStartChar/IsNameChar for speed; these
// tables only ever get consulted for runes above 0x7F.
var nameStartTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x00C0, 0x00D6, 1},
		{0x00D8, 0x00F6, 1},
		{0x00F8, 0x02FF, 1},
		{0x0370, 0x037D, 1},
		{0x037F, 0x1FFF, 1},
		{0x200C, 0x200D, 1},
		{0x2070, 0x218F, 1},
		{0x2C00, 0x2FEF, 1},
		{0x3001, 0xD7FF, 1},
		{0xF900, 0xFDCF, 1},
		{0xFDF0, 0xFFFD, 1},
	},
	R32: []unicode.Range32{
		{0x10000, 0xEFFFF, 1},
	},
}

var nameExtraTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x00B7, 0x00B7, 1},
		{0x0300, 0x036F, 1},
		{0x203F, 0x2040, 1},
	},
}

// IsNameStartChar reports whether r may begin an XML Name, per the XML
// 1.0 NameStartChar production.
func IsNameStartChar(r rune) bool {
	switch {
	case r == ':' || r == '_':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r < 0x80:
		return false
	default:
		return unicode.Is(nameStartTable, r)
	}
}

// IsNameChar reports whether r may appear after the first scalar of an
// XML Name, per the XML 1.0 NameChar production.
func IsNameChar(r rune) bool {
	switch {
	case r == '-' || r == '.':
		return true
	case r >= '0' && r <= '9':
		return true
	case r < 0x80:
		return IsNameStartChar(r)
	default:
		return IsNameStartChar(r) || unicode.Is(nameExtraTable, r)
	}
}

// isASCIINameChar is IsNameChar restricted to the single-byte case,
// used by the engine's consumeName to skip a run of ASCII Name bytes
// with cursor.skipWhile before falling back to rune-at-a-time decoding
// for anything above 0x7F.
func isASCIINameChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '.' || b == '_' || b == ':':
		return true
	default:
		return false
	}
}
