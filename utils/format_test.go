package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{179000, "Rp 179.000"},
		{250, "Rp 250"},
		{1500000, "Rp 1.500.000"},
		{0, "Rp 0"},
		{999, "Rp 999"},
		{1000, "Rp 1.000"},
		{179000.4, "Rp 179.000"},
		{-5000, "Rp -5.000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPrice(tc.in), "FormatPrice(%v)", tc.in)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Kelas Digital Marketing", "kelas-digital-marketing"},
		{"  Ebook  Premium  ", "ebook-premium"},
		{"Software & Plugin", "software-plugin"},
		{"Audio & Musik", "audio-musik"},
		{"Template--Desain", "template-desain"},
		{"--edge--", "edge"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestGenerateOrderIDFormat(t *testing.T) {
	id := GenerateOrderID()
	require.True(t, strings.HasPrefix(id, "ORD-"), "id %q should start with ORD-", id)

	pattern := regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{9}$`)
	assert.Regexp(t, pattern, id)
}

func TestGenerateOrderIDUniqueness(t *testing.T) {
	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := GenerateOrderID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate order id after %d generations: %s", i, id)
		seen[id] = struct{}{}
	}
}

func TestToggleIDAddsAndRemoves(t *testing.T) {
	ids := []string{"a", "b"}

	added := ToggleID(ids, "c")
	assert.Equal(t, []string{"a", "b", "c"}, added)

	removed := ToggleID(added, "a")
	assert.Equal(t, []string{"b", "c"}, removed)
}

func TestToggleIDTwiceIsIdentity(t *testing.T) {
	original := []string{"p1", "p2", "p3"}

	once := ToggleID(append([]string(nil), original...), "p2")
	twice := ToggleID(once, "p2")
	assert.ElementsMatch(t, original, twice)

	once = ToggleID(append([]string(nil), original...), "p9")
	twice = ToggleID(once, "p9")
	assert.ElementsMatch(t, original, twice)
}
