package xmlcompat

import (
	"encoding/xml"
	"io"

	"github.com/fencepost-dev/flatxml"
)

// TokenReader replays a parsed []flatxml.Node buffer as an
// encoding/xml.TokenReader, decoding entities in Text and Attr values
// along the way. It is the xmlcompat counterpart of the teacher's
// tokenReader/NewXMLTokenReader pair in xml.go, adapted to walk a
// flat Node slice instead of calling a *Scanner directly.
type TokenReader struct {
	buf []flatxml.Node
	idx int
}

// NewTokenReader wraps buf, as produced by flatxml.Parse/ParseInto.
func NewTokenReader(buf []flatxml.Node) *TokenReader {
	return &TokenReader{buf: buf}
}

// Token returns the next token, or io.EOF once buf is exhausted.
func (r *TokenReader) Token() (xml.Token, error) {
	if r.idx >= len(r.buf) {
		return nil, io.EOF
	}
	n := r.buf[r.idx]
	switch n.Kind {
	case flatxml.KindElement:
		se := xml.StartElement{Name: xml.Name{Local: n.Name}}
		for a := flatxml.Attrs(r.buf, r.idx); !a.Done(); a = a.Next() {
			attr := a.Node()
			value, err := DecodeEntities(attr.Value)
			if err != nil {
				return nil, err
			}
			se.Attr = append(se.Attr, xml.Attr{Name: xml.Name{Local: attr.Name}, Value: value})
		}
		r.idx = flatxml.Children(r.buf, r.idx).Index()
		return se, nil
	case flatxml.KindAttr:
		// Attr records are only ever visited via Attrs from the owning
		// Element; Token() skips straight past them to the first child.
		r.idx++
		return r.Token()
	case flatxml.KindEndElement:
		r.idx = flatxml.NextRaw(r.idx)
		return xml.EndElement{Name: xml.Name{Local: n.Name}}, nil
	case flatxml.KindComment:
		r.idx = flatxml.NextRaw(r.idx)
		return xml.Comment(n.Value), nil
	case flatxml.KindPI:
		r.idx = flatxml.NextRaw(r.idx)
		return xml.ProcInst{Target: n.Name, Inst: []byte(n.Value)}, nil
	case flatxml.KindText:
		r.idx = flatxml.NextRaw(r.idx)
		decoded, err := DecodeEntities(n.Value)
		if err != nil {
			return nil, err
		}
		return xml.CharData(decoded), nil
	default:
		r.idx = flatxml.NextRaw(r.idx)
		return r.Token()
	}
}
