package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"devevents/internal/domain"
)

const dateLayout = "2006-01-02"

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{
	dateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Monday, January 2, 2006",
	"Mon, Jan 2, 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// NormalizeDate parses input as a calendar date and returns its UTC date as YYYY-MM-DD.
func NormalizeDate(input string) (string, error) {
	s := strings.TrimSpace(input)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC().Format(dateLayout), nil
		}
	}
	return "", domain.InvalidFormat("date", input)
}

var timeRegex = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})(?::(\d{2}))?(?:[` + spaceClass + `]?(AM|PM))?$`)

// NormalizeTime converts H:MM, HH:MM or HH:MM:SS, optionally followed by AM/PM,
// to 24-hour HH:MM. Seconds are discarded.
func NormalizeTime(input string) (string, error) {
	m := timeRegex.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return "", domain.InvalidFormat("time", input)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if minutes > 59 {
		return "", domain.InvalidFormat("time", input)
	}
	if m[3] != "" {
		if seconds, _ := strconv.Atoi(m[3]); seconds > 59 {
			return "", domain.InvalidFormat("time", input)
		}
	}

	switch strings.ToUpper(m[4]) {
	case "PM":
		if hours < 1 || hours > 12 {
			return "", domain.InvalidFormat("time", input)
		}
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours < 1 || hours > 12 {
			return "", domain.InvalidFormat("time", input)
		}
		if hours == 12 {
			hours = 0
		}
	default:
		if hours > 23 {
			return "", domain.InvalidFormat("time", input)
		}
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}
