package legacyscan

import "bytes"

// IsElement reports whether token is a start/end/self-closing element
// tag rather than a ProcInst ("<?") or comment ("<!").
func IsElement(token []byte) bool {
	return len(token) >= 3 && token[0] == '<' && token[1] != '!' && token[1] != '?'
}

// IsSelfClosing reports whether token ends with "/>".
func IsSelfClosing(token []byte) bool {
	return len(token) > 2 && token[len(token)-2] == '/'
}

// IsEndElement reports whether token is a "</name>" closing tag.
func IsEndElement(token []byte) bool {
	return len(token) >= 2 && token[0] == '<' && token[1] == '/'
}

// IsStartElement is the inverse of IsEndElement.
func IsStartElement(token []byte) bool {
	return len(token) >= 2 && token[0] == '<' && token[1] != '/'
}

// IsComment reports whether token is a "<!--...-->" span.
func IsComment(token []byte) bool {
	return len(token) > 4 && token[0] == '<' && token[1] == '!' && token[2] == '-' && token[3] == '-'
}

// IsProcInst reports whether token is a "<?...?>" span.
func IsProcInst(token []byte) bool {
	return len(token) >= 2 && token[1] == '?'
}

// Element splits an element token into its name and its raw attribute
// span (everything between the name and the closing '>'/'/>') .
func Element(token []byte) (name []byte, attrs []byte) {
	if len(token) < 3 {
		return nil, nil
	}
	end := len(token) - 1
	start := 1
	if token[start] == '/' {
		start++
	}
	if token[end-1] == '/' {
		end--
	}
	if space := bytes.IndexByte(token[start:end], ' '); space != -1 {
		return token[start : start+space], token[space+start+1 : end]
	}
	return token[start:end], nil
}

// Comment extracts the content between "<!--" and "-->".
func Comment(token []byte) []byte {
	if len(token) <= 7 {
		return nil
	}
	return token[4 : len(token)-3]
}

// ProcInst splits a "<?target inst?>" token into target and inst.
func ProcInst(token []byte) (target []byte, inst []byte) {
	if idx := bytes.IndexByte(token, ' '); idx != -1 {
		return token[2:idx], token[idx+1 : len(token)-2]
	}
	return token[2 : len(token)-2], nil
}
