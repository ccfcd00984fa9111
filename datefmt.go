package lingo

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLength selects how verbose a formatted date is.
type DateLength int

const (
	DateFull DateLength = iota + 1
	DateLong
	DateMedium
	DateShort
)

const (
	monthsPerYear = 12
	daysPerWeek   = 7

	monthAbbrevRunes = 3
)

// ErrInvalidDateLength is returned for date lengths outside Full..Short.
var ErrInvalidDateLength = errors.New("lingo: invalid date length")

// FormattedDate renders at under the active language's calendar rules.
// A zero time means now.
func (c *Context) FormattedDate(length DateLength, at time.Time) (string, error) {
	if length < DateFull || length > DateShort {
		return "", fmt.Errorf("date length %d: %w", length, ErrInvalidDateLength)
	}

	if at.IsZero() {
		at = time.Now()
	}

	rules := c.active().Dates

	var pattern string
	switch length {
	case DateFull:
		pattern = rules.Full
	case DateLong:
		pattern = rules.Long
	case DateMedium:
		pattern = rules.Medium
	case DateShort:
		pattern = rules.Short
	}

	return expandDatePattern(pattern, rules, at), nil
}

// expandDatePattern substitutes the calendar tokens of a date pattern.
func expandDatePattern(pattern string, rules DateRules, at time.Time) string {
	month := rules.Months[int(at.Month())-1]

	return strings.NewReplacer(
		"{weekday}", rules.Weekdays[int(at.Weekday())],
		"{month}", month,
		"{mon}", abbreviate(month),
		"{day}", fmt.Sprintf("%d", at.Day()),
		"{dd}", fmt.Sprintf("%02d", at.Day()),
		"{mm}", fmt.Sprintf("%02d", int(at.Month())),
		"{year}", fmt.Sprintf("%d", at.Year()),
		"{yy}", fmt.Sprintf("%02d", at.Year()%100),
	).Replace(pattern)
}

func abbreviate(name string) string {
	runes := []rune(name)
	if len(runes) <= monthAbbrevRunes {
		return name
	}
	return string(runes[:monthAbbrevRunes])
}
