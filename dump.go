package flatxml

import (
	"fmt"
	"io"
)

// Dump writes one line per record in buf using the diagnostic format
// spec.md §6 defines for testing:
//
//	ELEM <tag>
//	- ATTR <name>=<value>
//	COMMENT <content>
//	PI <content>
//	TEXT <content>
//	ETAG <tag>
//
// It is deterministic for a given buf (spec.md §8 item 7) and is the
// only serialization the core itself endorses; see render.go for the
// fuller, supplemented round-trip to XML text.
//
// Grounded on frxml.h's element::dump/attr::dump/comment::dump/
// pi::dump/text::dump/etag::dump methods and the free frxml::dump
// dispatcher.
func Dump(w io.Writer, buf []Node) error {
	for _, n := range buf {
		var err error
		switch n.Kind {
		case KindElement:
			_, err = fmt.Fprintf(w, "ELEM %s\n", n.Name)
		case KindAttr:
			_, err = fmt.Fprintf(w, "- ATTR %s=%s\n", n.Name, n.Value)
		case KindComment:
			_, err = fmt.Fprintf(w, "COMMENT %s\n", n.Value)
		case KindPI:
			_, err = fmt.Fprintf(w, "PI %s\n", n.Value)
		case KindText:
			_, err = fmt.Fprintf(w, "TEXT %s\n", n.Value)
		case KindEndElement:
			_, err = fmt.Fprintf(w, "ETAG %s\n", n.Name)
		default:
			_, err = fmt.Fprintf(w, "NONE\n")
		}
		if err != nil {
			return err
		}
	}
	return nil
}
