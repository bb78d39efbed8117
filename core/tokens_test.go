package core

import (
	"testing"

	"github.com/chriso345/gore/assert"
)

func TestIsShortOption(t *testing.T) {
	assert.True(t, isShortOption("-x"))
	assert.True(t, isShortOption("-xyz"))
	assert.Equal(t, false, isShortOption("x"))
	assert.Equal(t, false, isShortOption("-"))
	assert.Equal(t, false, isShortOption("--x"))
	assert.Equal(t, false, isShortOption(""))
}

func TestIsLongOption(t *testing.T) {
	assert.True(t, isLongOption("--xyz"))
	assert.True(t, isLongOption("--x"))
	assert.Equal(t, false, isLongOption("-x"))
	assert.Equal(t, false, isLongOption("--"))
	assert.Equal(t, false, isLongOption("---x"))
	assert.Equal(t, false, isLongOption("xyz"))
}

func TestOptionToName(t *testing.T) {
	name, ok := optionToName("--threads")
	assert.True(t, ok)
	assert.Equal(t, "threads", name)

	name, ok = optionToName("-t")
	assert.True(t, ok)
	assert.Equal(t, "t", name)

	_, ok = optionToName("threads")
	assert.Equal(t, false, ok)

	// The end-of-options marker is not an option.
	_, ok = optionToName("--")
	assert.Equal(t, false, ok)
}

func TestNameToOption(t *testing.T) {
	assert.Equal(t, "--threads", NameToOption("threads"))
	assert.Equal(t, "-t", NameToOption("t"))
	assert.Equal(t, "", NameToOption(""))
}

func TestSplitOption(t *testing.T) {
	head, value, hasValue := splitOption("--foo=bar")
	assert.Equal(t, "--foo", head)
	assert.Equal(t, "bar", value)
	assert.True(t, hasValue)

	head, _, hasValue = splitOption("--foo")
	assert.Equal(t, "--foo", head)
	assert.Equal(t, false, hasValue)

	head, value, hasValue = splitOption("--foo=")
	assert.Equal(t, "--foo", head)
	assert.Equal(t, "", value)
	assert.True(t, hasValue)

	// Only the first '=' splits.
	head, value, _ = splitOption("--foo=a=b")
	assert.Equal(t, "--foo", head)
	assert.Equal(t, "a=b", value)
}

func TestSplitArgs(t *testing.T) {
	head, tail := splitArgs([]string{"a", "--", "b", "c"})
	assert.Equal(t, 1, len(head))
	assert.Equal(t, "a", head[0])
	assert.Equal(t, 2, len(tail))
	assert.Equal(t, "b", tail[0])
	assert.Equal(t, "c", tail[1])

	head, tail = splitArgs([]string{"a", "b"})
	assert.Equal(t, 2, len(head))
	assert.Equal(t, 0, len(tail))

	// Only the first marker splits; later ones are verbatim tokens.
	head, tail = splitArgs([]string{"--", "a", "--", "b"})
	assert.Equal(t, 0, len(head))
	assert.Equal(t, 3, len(tail))
	assert.Equal(t, "--", tail[1])

	// The marker is recognized only as an exact standalone token.
	head, _ = splitArgs([]string{"a--b", "--c"})
	assert.Equal(t, 2, len(head))
}
