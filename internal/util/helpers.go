package util

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// LeadingInt parses the leading integer of a free-text label such as
// "25 min". Labels without a leading number yield 0.
func LeadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RoundInt rounds to the nearest integer.
func RoundInt(v float64) int {
	return int(math.Round(v))
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// ShortID returns a random lowercase alphanumeric identifier of length n.
func ShortID(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return b.String()
}

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
