// Package inr formats rupee amounts with Indian digit grouping
// (₹12,34,567.50): the last three digits group together, every two
// digits after that.
package inr

import (
	"fmt"
	"math"
	"strings"
)

func Format(amount float64) string {
	neg := amount < 0
	amount = math.Abs(amount)

	whole := int64(amount)
	frac := int64(math.Round((amount - float64(whole)) * 100))
	if frac == 100 {
		whole++
		frac = 0
	}

	s := group(whole)
	if frac > 0 {
		s = fmt.Sprintf("%s.%02d", s, frac)
	}
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}

func group(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}
