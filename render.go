package flatxml

import (
	"fmt"
	"io"
	"strings"
)

// Render writes buf back out as indented XML text, walking the
// top-level records (leading Misc, the root element, trailing Misc) in
// order from index 0. It is the supplemented counterpart of
// frxml::dom::tostring from the original C++ source: spec.md scopes
// pretty-printing out of the hard core (§1), but only Dump's one-line
// diagnostic format is named there, not a fuller round trip, and the
// original implementation had one. Render exists for tests and for
// cmd/flatxmldump -render; the parser itself never calls it.
func Render(w io.Writer, buf []Node) error {
	for i := 0; i < len(buf); i = NextSibling(buf, i) {
		if err := renderNode(w, buf, i, 0); err != nil {
			return err
		}
	}
	return nil
}

func renderNode(w io.Writer, buf []Node, idx, depth int) error {
	indent := strings.Repeat("\t", depth)
	n := buf[idx]
	switch n.Kind {
	case KindElement:
		return renderElement(w, buf, idx, depth, indent)
	case KindComment:
		_, err := fmt.Fprintf(w, "%s<!--%s-->\n", indent, n.Value)
		return err
	case KindPI:
		_, err := fmt.Fprintf(w, "%s<?%s %s?>\n", indent, n.Name, n.Value)
		return err
	case KindText:
		_, err := fmt.Fprintf(w, "%s%s\n", indent, n.Value)
		return err
	default:
		return nil
	}
}

func renderElement(w io.Writer, buf []Node, idx, depth int, indent string) error {
	n := buf[idx]
	if _, err := fmt.Fprintf(w, "%s<%s", indent, n.Name); err != nil {
		return err
	}
	for a := Attrs(buf, idx); !a.Done(); a = a.Next() {
		attr := a.Node()
		quote := byte('"')
		if strings.ContainsRune(attr.Value, '"') {
			quote = '\''
		}
		if _, err := fmt.Fprintf(w, " %s=%c%s%c", attr.Name, quote, attr.Value, quote); err != nil {
			return err
		}
	}

	c := Children(buf, idx)
	if c.Done() {
		_, err := fmt.Fprint(w, "/>\n")
		return err
	}
	if _, err := fmt.Fprint(w, ">\n"); err != nil {
		return err
	}
	for ; !c.Done(); c = c.Next() {
		if err := renderNode(w, buf, c.Index(), depth+1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s</%s>\n", indent, n.Name)
	return err
}
