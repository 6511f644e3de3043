package flatxml

import "unicode/utf8"

// Callback is invoked once per emitted Node, synchronously, before the
// engine moves on to recognize the next record. ctx is whatever the
// caller passed to Parse; Go generics provide the "compile-time
// function selection" spec.md §9 allows as an alternative to a runtime
// function pointer.
type Callback[C any] func(ctx C, n Node)

// Option configures a Parse call.
type Option func(*options)

type options struct {
	maxDepth int // 0 means unbounded
}

// WithMaxDepth caps element nesting depth. Exceeding it yields
// NestingTooDeep instead of growing the Go call stack without bound
// (spec.md §5: "an implementation MAY impose a configurable maximum
// nesting depth").
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// Parse runs the single-pass recursive-descent engine over input,
// invoking cb once per emitted record in document order. It returns Ok
// (and the input's length as the offset) on success, or a non-Ok State
// with the byte offset at which the failure was detected. cb is never
// called again once a non-Ok State is about to be returned.
func Parse[C any](input []byte, ctx C, cb Callback[C], opts ...Option) (State, int) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	p := &parser[C]{
		cur:       newCursor(input),
		ctx:       ctx,
		cb:        cb,
		maxDepth:  o.maxDepth,
		errOffset: -1,
	}
	st := p.parseDocument()
	offset := p.cur.pos
	if p.errOffset >= 0 {
		offset = p.errOffset
	}
	return st, offset
}

type parser[C any] struct {
	cur       cursor
	ctx       C
	cb        Callback[C]
	maxDepth  int
	depth     int
	errOffset int // -1 unless a recognizer pins the error to an earlier offset
}

func (p *parser[C]) emit(n Node) {
	p.cb(p.ctx, n)
}

// parseDocument implements: document := Misc* element Misc*
func (p *parser[C]) parseDocument() State {
	if st := p.parseMiscVec(); st != Ok {
		return st
	}
	p.cur.skipSpace()
	if p.cur.eof() {
		return MissingBegin
	}
	if !p.cur.startWith('<') {
		return MissingBegin
	}
	if p.cur.startWithLiteral("</") {
		return NoSuch
	}
	if st := p.parseElement(); st != Ok {
		return st
	}
	if st := p.parseMiscVec(); st != Ok {
		return st
	}
	p.cur.skipSpace()
	if !p.cur.eof() {
		return NoSuch
	}
	return Ok
}

// parseMiscVec implements: Misc* where Misc := Comment | PI | S.
// It stops cleanly (returning Ok) the moment the next significant
// token is not a Comment or PI.
func (p *parser[C]) parseMiscVec() State {
	for {
		p.cur.skipSpace()
		if p.cur.eof() {
			return Ok
		}
		switch {
		case p.cur.startWithLiteral("<!--"):
			if st := p.parseComment(); st != Ok {
				return st
			}
		case p.cur.startWithLiteral("<?"):
			if st := p.parsePI(); st != Ok {
				return st
			}
		default:
			return Ok
		}
	}
}

// parsePI recognizes `<?target content?>` (spec §4.4.4).
func (p *parser[C]) parsePI() State {
	p.cur.advance(2) // "<?"
	start := p.cur.pos
	if st := p.consumeName(); st != Ok {
		return st
	}
	if p.cur.pos == start {
		return MissingName
	}
	target := p.cur.buf[start:p.cur.pos]
	p.cur.skipSpace()
	contentStart := p.cur.pos
	end := p.cur.indexLiteral("?>")
	if end == -1 {
		return NoEnd
	}
	content := p.cur.buf[contentStart:end]
	p.cur.pos = end
	p.cur.advance(2) // "?>"
	p.emit(Node{Kind: KindPI, Name: unsafeString(target), Value: unsafeString(content)})
	return Ok
}

// parseComment recognizes `<!--content-->` (spec §4.4.5).
func (p *parser[C]) parseComment() State {
	p.cur.advance(4) // "<!--"
	start := p.cur.pos
	end := p.cur.indexLiteral("--")
	if end == -1 {
		return NoEnd
	}
	content := p.cur.buf[start:end]
	p.cur.pos = end
	if !p.cur.hasRemaining(3) || !p.cur.startWithLiteral("-->") {
		return InvalidSequence
	}
	p.cur.advance(3)
	p.emit(Node{Kind: KindComment, Value: unsafeString(content)})
	return Ok
}

// consumeName advances the cursor over the maximal Name at pos,
// leaving pos unchanged if no valid Name is present. If malformed UTF-8
// is encountered inside a Name it returns InvalidSequence with pos left
// at the malformed byte. Returning EarlyEof rather than MissingName
// when pos is already at EOF distinguishes "the input simply ran out
// here" from MissingName's "a character is present but isn't a valid
// Name start" (e.g. "<>").
func (p *parser[C]) consumeName() State {
	start := p.cur.pos
	if p.cur.eof() {
		return EarlyEof
	}
	r, n := p.cur.decodeRune()
	if n == invalidRuneLen {
		return InvalidSequence
	}
	if !IsNameStartChar(r) {
		p.cur.pos = start
		return MissingName
	}
	p.cur.advance(n)
	for !p.cur.eof() {
		// Fast path: ASCII Name bytes make up the overwhelming majority
		// of real documents, so skip a whole run of them in one pass
		// before paying for rune-at-a-time decoding.
		p.cur.skipWhile(isASCIINameChar)
		if p.cur.eof() || p.cur.peek() < utf8.RuneSelf {
			break
		}
		r, n = p.cur.decodeRune()
		if n == invalidRuneLen {
			return InvalidSequence
		}
		if !IsNameChar(r) {
			break
		}
		p.cur.advance(n)
	}
	return Ok
}

// parseElement recognizes one full Element production: the open tag,
// its attributes, and either a self-close or a child loop terminated
// by a matching end tag (spec §4.4.6).
func (p *parser[C]) parseElement() State {
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		return NestingTooDeep
	}
	p.cur.advance(1) // "<"
	start := p.cur.pos
	if st := p.consumeName(); st != Ok {
		return st
	}
	tag := unsafeString(p.cur.buf[start:p.cur.pos])
	p.emit(Node{Kind: KindElement, Name: tag})

	seen := make([]string, 0, 4)
	for {
		p.cur.skipSpace()
		if p.cur.eof() {
			return TagNotClosed
		}
		if p.cur.startWith('/', '>') {
			break
		}
		name, value, st := p.parseAttr()
		if st != Ok {
			return st
		}
		for _, s := range seen {
			if s == name {
				return DuplicateAttribute
			}
		}
		seen = append(seen, name)
		p.emit(Node{Kind: KindAttr, Name: name, Value: value})
	}

	if p.cur.startWith('/') {
		p.cur.advance(1)
		if !p.cur.startWith('>') {
			return TagNotClosed
		}
		p.cur.advance(1)
		p.emit(Node{Kind: KindEndElement, Name: tag})
		return Ok
	}
	p.cur.advance(1) // ">"

	p.depth++
	st := p.parseChildren(tag)
	p.depth--
	return st
}

// parseAttr recognizes one `name="value"` or `name='value'` pair
// (spec §4.4.6 step 4). The cursor is positioned at the attribute name
// on entry.
func (p *parser[C]) parseAttr() (name, value string, state State) {
	if r, n := p.cur.decodeRune(); n == invalidRuneLen || !IsNameStartChar(r) {
		return "", "", InvalidSequence
	}
	start := p.cur.pos
	if st := p.consumeName(); st != Ok {
		return "", "", st
	}
	name = unsafeString(p.cur.buf[start:p.cur.pos])

	if !p.cur.startWith('=') {
		return "", "", MissingEq
	}
	p.cur.advance(1)

	if p.cur.eof() {
		return "", "", MissingQuote
	}
	quote := p.cur.peek()
	if quote != '"' && quote != '\'' {
		return "", "", MissingQuote
	}
	p.cur.advance(1)
	valStart := p.cur.pos
	end := p.cur.indexByte(quote)
	if end == -1 {
		return "", "", QuoteNotClosed
	}
	value = unsafeString(p.cur.buf[valStart:end])
	p.cur.pos = end
	p.cur.advance(1)
	return name, value, Ok
}

// parseChildren drives the child loop of an open element until it
// sees a matching end tag, emitting Text/Comment/PI/Element/EndElement
// records for each production in between (spec §4.4.6 step 6).
func (p *parser[C]) parseChildren(tag string) State {
	for {
		if p.cur.eof() {
			return ElementNotClosed
		}
		if !p.cur.startWith('<') {
			textStart := p.cur.pos
			p.cur.skipUntil(isLessThan)
			if p.cur.eof() {
				return ElementNotClosed
			}
			if p.cur.pos > textStart {
				p.emit(Node{Kind: KindText, Value: unsafeString(p.cur.buf[textStart:p.cur.pos])})
			}
			continue
		}
		if p.cur.startWithLiteral("</") {
			break
		}
		switch {
		case p.cur.startWithLiteral("<![CDATA["):
			return InvalidSequence
		case p.cur.startWithLiteral("<!--"):
			if st := p.parseComment(); st != Ok {
				return st
			}
		case p.cur.startWithLiteral("<?"):
			if st := p.parsePI(); st != Ok {
				return st
			}
		default:
			if st := p.parseElement(); st != Ok {
				return st
			}
		}
	}

	closeTag, tagStart, st := p.parseEndTag()
	if st != Ok {
		return st
	}
	if closeTag != tag {
		p.errOffset = tagStart
		return InvalidEndTag
	}
	p.emit(Node{Kind: KindEndElement, Name: tag})
	return Ok
}

func isLessThan(b byte) bool { return b == '<' }

// parseEndTag recognizes `</tag>`, returning the tag name and the
// offset its first byte starts at, without validating it against the
// open element (the caller does that).
func (p *parser[C]) parseEndTag() (tag string, tagStart int, state State) {
	p.cur.advance(2) // "</"
	tagStart = p.cur.pos
	if st := p.consumeName(); st != Ok {
		return "", tagStart, st
	}
	tag = unsafeString(p.cur.buf[tagStart:p.cur.pos])
	p.cur.skipSpace()
	if !p.cur.startWith('>') {
		return "", tagStart, NoEnd
	}
	p.cur.advance(1)
	return tag, tagStart, Ok
}
