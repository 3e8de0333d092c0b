// internal/matching/normalize.go
// Turns raw directory profiles into comparable values

package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// OpenEnded is the Max of an age range with no upper bound.
const OpenEnded = math.MaxInt32

// AgeRange is an inclusive, canonical age preference.
type AgeRange struct {
	Min int
	Max int
}

// Contains reports whether age falls inside the range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// IsOpenEnded reports whether the range has no upper bound.
func (r AgeRange) IsOpenEnded() bool {
	return r.Max == OpenEnded
}

// Interest is a normalized interest label: Key is used for comparison,
// Label keeps the casing the user typed.
type Interest struct {
	Key   string
	Label string
}

// NormalizedProfile holds the scorable attributes of one profile.
// Empty strings mean the field was not populated.
type NormalizedProfile struct {
	ID         string
	Age        int
	Gender     string
	LookingFor string

	// Location is empty when unknown. Two unknown locations never match.
	Location string

	Interests []Interest

	// AgeRange is nil when no usable preference is stated.
	AgeRange *AgeRange
	// AgeRangeErr is set when a stated range could not be parsed.
	AgeRangeErr error

	Relationship string
	Orientation  string
	Smoking      string
	Alcohol      string

	profile *UserProfile
}

// Profile returns the raw record the normalized profile was built from.
func (n *NormalizedProfile) Profile() *UserProfile {
	return n.profile
}

// HasInterests reports whether any interest survived normalization.
func (n *NormalizedProfile) HasInterests() bool {
	return len(n.Interests) > 0
}

// Normalize extracts the comparable attributes of p, computing ages as of asOf.
// It fails only when id or dateOfBirth is missing or unreadable.
func Normalize(p *UserProfile, asOf time.Time) (*NormalizedProfile, error) {
	if p == nil {
		return nil, &ValidationError{Field: "profile"}
	}
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return nil, &ValidationError{Field: "id"}
	}
	if p.DateOfBirth.IsZero() {
		return nil, &ValidationError{ProfileID: id, Field: "dateOfBirth", Input: p.DateOfBirth.Unparsed()}
	}

	n := &NormalizedProfile{
		ID:           id,
		Age:          AgeOn(p.DateOfBirth.Time, asOf),
		Gender:       normalizeText(p.Gender),
		LookingFor:   normalizeText(p.LookingFor),
		Location:     normalizeText(p.Location),
		Interests:    normalizeInterests(p.Interests),
		Relationship: normalizeText(p.Relationship),
		Orientation:  normalizeText(p.Orientation),
		Smoking:      normalizeText(p.Smoking),
		Alcohol:      normalizeText(p.Alcohol),
		profile:      p,
	}

	r, err := ParseAgeRange(p.PreferredAgeRange)
	if err != nil {
		n.AgeRangeErr = err
	} else {
		n.AgeRange = r
	}

	return n, nil
}

// AgeOn returns the age in whole years of someone born on dob, as of asOf.
func AgeOn(dob, asOf time.Time) int {
	by, bm, bd := dob.Date()
	ny, nm, nd := asOf.Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// ParseAgeRange converts either shape of a preferred age range into an AgeRange.
// A zero preference yields (nil, nil).
func ParseAgeRange(pref AgeRangePref) (*AgeRange, error) {
	if pref.raw != "" {
		return nil, &MalformedRangeError{Input: pref.raw, Reason: "expected a string or a {min,max} object"}
	}
	if pref.Bounds != nil {
		return parseRangeBounds(pref.Bounds)
	}
	if strings.TrimSpace(pref.Text) == "" {
		return nil, nil
	}
	return parseRangeText(pref.Text)
}

func parseRangeBounds(b *AgeBounds) (*AgeRange, error) {
	r := &AgeRange{Min: 0, Max: OpenEnded}
	if b.Min != nil {
		r.Min = *b.Min
	}
	if b.Max != nil {
		r.Max = *b.Max
	}

	input := formatBounds(b)
	if r.Min < 0 {
		return nil, &MalformedRangeError{Input: input, Reason: "negative minimum"}
	}
	if r.Max < r.Min {
		return nil, &MalformedRangeError{Input: input, Reason: "maximum below minimum"}
	}
	return r, nil
}

func formatBounds(b *AgeBounds) string {
	lo, hi := "", ""
	if b.Min != nil {
		lo = strconv.Itoa(*b.Min)
	}
	if b.Max != nil {
		hi = strconv.Itoa(*b.Max)
	}
	return fmt.Sprintf("{min:%s max:%s}", lo, hi)
}

// parseRangeText accepts "25-35", "25 - 35 years", "30+", "30-" and "30".
func parseRangeText(input string) (*AgeRange, error) {
	s := strings.TrimSpace(input)
	lowPart, highPart, hasHyphen := strings.Cut(s, "-")

	lo, rest, ok := leadingInt(lowPart)
	if !ok {
		return nil, &MalformedRangeError{Input: input, Reason: "missing lower bound"}
	}

	if !hasHyphen {
		if strings.HasPrefix(rest, "+") {
			return &AgeRange{Min: lo, Max: OpenEnded}, nil
		}
		if strings.IndexFunc(rest, unicode.IsDigit) >= 0 {
			return nil, &MalformedRangeError{Input: input, Reason: "missing separator"}
		}
		return &AgeRange{Min: lo, Max: lo}, nil
	}

	highPart = strings.TrimSpace(highPart)
	if highPart == "" || strings.HasPrefix(highPart, "+") {
		return &AgeRange{Min: lo, Max: OpenEnded}, nil
	}

	hi, tail, ok := leadingInt(highPart)
	if !ok {
		return nil, &MalformedRangeError{Input: input, Reason: "invalid upper bound"}
	}
	if strings.IndexFunc(tail, unicode.IsDigit) >= 0 {
		return nil, &MalformedRangeError{Input: input, Reason: "trailing numbers after upper bound"}
	}
	if hi < lo {
		return nil, &MalformedRangeError{Input: input, Reason: "maximum below minimum"}
	}
	return &AgeRange{Min: lo, Max: hi}, nil
}

// leadingInt reads the run of digits at the start of s (after spaces) and
// returns the value with the trimmed remainder.
func leadingInt(s string) (int, string, bool) {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end == -1 {
		end = len(s)
	}
	if end == 0 {
		return 0, s, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil || v > OpenEnded {
		return 0, s, false
	}
	return v, strings.TrimSpace(s[end:]), true
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// normalizeInterests dedupes case-insensitively, keeping the first casing seen.
func normalizeInterests(labels []string) []Interest {
	if len(labels) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(labels))
	out := make([]Interest, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		key := normalizeText(label)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Interest{Key: key, Label: label})
	}
	return out
}
