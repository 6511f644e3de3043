package legacyscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.True(t, IsElement([]byte("<a>")))
	assert.False(t, IsElement([]byte("<?a?>")))
	assert.False(t, IsElement([]byte("<!--a-->")))

	assert.True(t, IsSelfClosing([]byte("<a/>")))
	assert.False(t, IsSelfClosing([]byte("<a>")))

	assert.True(t, IsEndElement([]byte("</a>")))
	assert.False(t, IsEndElement([]byte("<a>")))

	assert.True(t, IsStartElement([]byte("<a>")))
	assert.False(t, IsStartElement([]byte("</a>")))

	assert.True(t, IsComment([]byte("<!--x-->")))
	assert.False(t, IsComment([]byte("<!directive>")))

	assert.True(t, IsProcInst([]byte("<?t x?>")))
	assert.False(t, IsProcInst([]byte("<a>")))
}

func TestElement(t *testing.T) {
	name, attrs := Element([]byte(`<foo:bar key="val"/>`))
	assert.Equal(t, "foo:bar", string(name))
	assert.Equal(t, `key="val"`, string(attrs))

	name, attrs = Element([]byte(`<a>`))
	assert.Equal(t, "a", string(name))
	assert.Nil(t, attrs)

	name, _ = Element([]byte(`</a>`))
	assert.Equal(t, "a", string(name))
}

func TestComment(t *testing.T) {
	assert.Equal(t, " c ", string(Comment([]byte("<!-- c -->"))))
	assert.Nil(t, Comment([]byte("<!---->")))
}

func TestProcInst(t *testing.T) {
	target, inst := ProcInst([]byte("<?t x?>"))
	assert.Equal(t, "t", string(target))
	assert.Equal(t, "x", string(inst))

	target, inst = ProcInst([]byte("<?t?>"))
	assert.Equal(t, "t", string(target))
	assert.Nil(t, inst)
}
