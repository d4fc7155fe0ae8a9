package cmdline

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		args []string
		bg   bool
	}{
		{"echo 'a b' c", []string{"echo", "a b", "c"}, false},
		{"sleep 5 &", []string{"sleep", "5"}, true},
		{"sleep 5 &\n", []string{"sleep", "5"}, true},
		{"   /bin/ls   -l\n", []string{"/bin/ls", "-l"}, false},
		{"\tprintf\t'%s\\n' x", []string{"printf", `%s\n`, "x"}, false},
		{"echo ''", []string{"echo", ""}, false},
		{"echo 'a b'c", []string{"echo", "a b", "c"}, false},
		{"echo it's", []string{"echo", "it's"}, false},
		{"echo a&", []string{"echo", "a&"}, false},
		{"echo & x", []string{"echo", "&", "x"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got, err := Parse(tc.line)
			require.NoError(t, err)

			assert.Equal(t, tc.args, got.Args)
			assert.Equal(t, tc.bg, got.Background)
			assert.Equal(t, strings.TrimRight(tc.line, "\n"), got.Raw)
		})
	}
}

func TestParseBlank(t *testing.T) {
	for _, line := range []string{"", "\n", "    \n", "\t \r\n"} {
		got, err := Parse(line)
		require.NoError(t, err)
		assert.True(t, got.Empty(), "%q", line)
		assert.False(t, got.Background, "%q", line)
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	_, err := Parse("echo 'abc\n")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Error(), "unterminated quote")
}

func TestParserLimits(t *testing.T) {
	p := Parser{MaxLine: 16, MaxArgs: 3}

	_, err := p.Parse(strings.Repeat("x", 17))
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))

	_, err = p.Parse("a b c d")
	assert.True(t, errors.As(err, &perr))

	// The background marker does not count against the argument limit.
	got, err := p.Parse("a b c &")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got.Args)
	assert.True(t, got.Background)
}

func TestParserPosix(t *testing.T) {
	p := Parser{Syntax: Posix}

	got, err := p.Parse(`echo "a b" c\ d &`)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "a b", "c d"}, got.Args)
	assert.True(t, got.Background)

	_, err = p.Parse(`echo "open`)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Error(t, perr.Unwrap())
}

func TestLineString(t *testing.T) {
	got, err := Parse("echo 'a b' c &")
	require.NoError(t, err)
	assert.Equal(t, `echo 'a b' c`, got.String())
}
