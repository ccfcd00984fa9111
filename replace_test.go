package lingo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lingobase/lingo"
)

func TestReplaceAll(t *testing.T) {
	testCases := []struct {
		name  string
		in    string
		pairs map[string]string
		want  string
	}{
		{
			name:  "longest match wins",
			in:    "ab",
			pairs: map[string]string{"a": "1", "ab": "2"},
			want:  "2",
		},
		{
			name:  "no cascading replacement",
			in:    "hi x",
			pairs: map[string]string{"hi": "bye", "bye": "gone"},
			want:  "bye x",
		},
		{
			name:  "each position replaced at most once",
			in:    "aaa",
			pairs: map[string]string{"aa": "b"},
			want:  "ba",
		},
		{
			name:  "simultaneous pairs",
			in:    "{user} joined {room}",
			pairs: map[string]string{"{user}": "ada", "{room}": "ops"},
			want:  "ada joined ops",
		},
		{
			name:  "empty pairs leave input unchanged",
			in:    "untouched",
			pairs: nil,
			want:  "untouched",
		},
		{
			name:  "empty key is ignored",
			in:    "ab",
			pairs: map[string]string{"": "x", "b": "c"},
			want:  "ac",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, lingo.ReplaceAll(tc.in, tc.pairs))
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	require.Equal(t,
		"&lt;a href=&quot;/?x=1&amp;y=2&quot;&gt;link&lt;/a&gt;",
		lingo.EscapeHTML(`<a href="/?x=1&y=2">link</a>`),
	)
}
