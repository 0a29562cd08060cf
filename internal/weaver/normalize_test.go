package weaver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"weaver/internal/weaver"
	"weaver/pkg/serrors"
)

func TestNormalizeQuery(t *testing.T) {
	dict := testDict(t)

	cases := []struct {
		name   string
		start  string
		target string
		want   [2]string
		msg    string
	}{
		{name: "trims and uppercases", start: " cold ", target: "Warm\n", want: [2]string{"COLD", "WARM"}},
		{name: "same word", start: "cold", target: "COLD", want: [2]string{"COLD", "COLD"}},
		{name: "short start", start: "col", target: "warm", msg: "Both words must be exactly 4 letters long"},
		{name: "long target", start: "cold", target: "warmer", msg: "Both words must be exactly 4 letters long"},
		{name: "empty", start: "", target: "", msg: "Both words must be exactly 4 letters long"},
		{name: "unknown start", start: "zzzz", target: "warm", msg: `"ZZZZ" is not in the word list`},
		{name: "unknown target", start: "cold", target: "qqqq", msg: `"QQQQ" is not in the word list`},
		{name: "non letters", start: "c0ld", target: "warm", msg: `"C0LD" is not in the word list`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, target, err := weaver.NormalizeQuery(dict, tc.start, tc.target)
			if tc.msg != "" {
				require.ErrorIs(t, err, serrors.ErrBadRequest)
				require.EqualError(t, err, tc.msg)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, [2]string{start, target})
		})
	}
}

func TestNormalizeWord(t *testing.T) {
	dict := testDict(t)

	word, err := weaver.NormalizeWord(dict, " ward ")
	require.NoError(t, err)
	require.Equal(t, "WARD", word)

	_, err = weaver.NormalizeWord(dict, "wa")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.EqualError(t, err, "Please enter a valid 4-letter word first")

	_, err = weaver.NormalizeWord(dict, "xyzw")
	require.EqualError(t, err, `"XYZW" is not in the word list`)
}
