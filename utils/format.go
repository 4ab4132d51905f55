package utils

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FormatPrice renders an amount in whole rupiah with dot thousands
// separators, e.g. 179000 -> "Rp 179.000".
func FormatPrice(price float64) string {
	n := int64(math.Round(price))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return "Rp " + sign + b.String()
}

var (
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugInvalid  = regexp.MustCompile(`[^\w-]+`)
	slugDashes   = regexp.MustCompile(`-{2,}`)
	slugTrimEdge = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives a URL-safe, lowercase, hyphenated slug from a title.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return slugTrimEdge.ReplaceAllString(s, "")
}

const orderIDCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderID returns "ORD-<unix millis>-<9 random base36 chars>".
// Uniqueness relies on the random suffix space; there is no server-side
// uniqueness check.
func GenerateOrderID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderIDCharset[rand.Intn(len(orderIDCharset))]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}

// ToggleID removes id from ids when present, appends it otherwise. Calling it
// twice with the same id restores the original list.
func ToggleID(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}
