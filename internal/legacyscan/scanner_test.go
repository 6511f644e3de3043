package legacyscan

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner_Skip(t *testing.T) {
	s := NewScanner([]byte(`<nested><element>with data</element><closing/><?skip me?></nested>more`))
	token, chardata, err := s.Next()
	assert.NoError(t, err)
	assert.False(t, chardata)
	assert.Equal(t, []byte("<nested>"), token)

	assert.NoError(t, s.Skip())

	token, chardata, err = s.Next()
	assert.NoError(t, err)
	assert.True(t, chardata)
	assert.Equal(t, []byte("more"), token)

	_, _, err = s.Next()
	assert.Equal(t, io.EOF, err)

	s.Reset([]byte("<unterminated"))
	assert.Error(t, s.Skip())
}

func TestScanner_Next(t *testing.T) {
	type result struct {
		Token    []byte
		CharData bool
	}
	testCases := []struct {
		Name     string
		Input    string
		Error    string
		Expected []result
	}{
		{Name: "empty", Input: ``, Expected: nil},
		{Name: "bare text", Input: `foo`, Expected: []result{{Token: []byte("foo"), CharData: true}}},
		{
			Name:  "mixed",
			Input: `foo<bar><gar/></bar>har`,
			Expected: []result{
				{Token: []byte("foo"), CharData: true},
				{Token: []byte("<bar>")},
				{Token: []byte("<gar/>")},
				{Token: []byte("</bar>")},
				{Token: []byte("har"), CharData: true},
			},
		},
		{Name: "unterminated", Input: `<unterminated`, Error: "legacyscan: expected token to end with '>'"},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			s := NewScanner([]byte(tc.Input))
			var actual []result
			var err error
			for {
				var token []byte
				var chardata bool
				token, chardata, err = s.Next()
				if err != nil {
					break
				}
				actual = append(actual, result{Token: token, CharData: chardata})
			}
			if tc.Error != "" {
				assert.EqualError(t, err, tc.Error)
			} else {
				assert.Equal(t, io.EOF, err)
			}
			assert.Equal(t, tc.Expected, actual)
		})
	}
}

func TestScanner_Seek(t *testing.T) {
	s := NewScanner([]byte(`<a><b/></a>`))
	pos, err := s.Seek(3, io.SeekStart)
	assert.NoError(t, err)
	assert.EqualValues(t, 3, pos)

	_, err = s.Seek(-1, io.SeekStart)
	assert.Error(t, err)

	_, err = s.Seek(1000, io.SeekStart)
	assert.Error(t, err)

	_, err = s.Seek(0, 99)
	assert.Error(t, err)
}
