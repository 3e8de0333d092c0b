// internal/matching/models.go

package matching

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// UserProfile is the raw profile record supplied by the user directory.
// The matcher only reads it.
type UserProfile struct {
	ID                string       `json:"id"`
	FirstName         string       `json:"firstName,omitempty"`
	LastName          string       `json:"lastName,omitempty"`
	DateOfBirth       Date         `json:"dateOfBirth"`
	Gender            string       `json:"gender,omitempty"`
	LookingFor        string       `json:"lookingFor,omitempty"`
	PreferredAgeRange AgeRangePref `json:"preferredAgeRange"`
	Location          string       `json:"location,omitempty"`
	Interests         []string     `json:"interests,omitempty"`
	Relationship      string       `json:"relationship,omitempty"`
	Orientation       string       `json:"orientation,omitempty"`
	Smoking           string       `json:"smoking,omitempty"`
	Alcohol           string       `json:"alcohol,omitempty"`
	Bio               string       `json:"bio,omitempty"`
	ProfilePic        string       `json:"profilePic,omitempty"`
}

// Date is a calendar date. JSON accepts "2006-01-02" or RFC3339.
// Any other value decodes to the zero date and is kept for error reporting.
type Date struct {
	time.Time
	raw string
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Unparsed returns the input that failed to decode, if any.
func (d Date) Unparsed() string {
	return d.raw
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		if d.raw != "" {
			return json.Marshal(d.raw)
		}
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*d = Date{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		d.raw = string(data)
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	d.raw = s
	return nil
}

// AgeBounds is the structured form of a preferred age range.
// A nil Max means open-ended.
type AgeBounds struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// AgeRangePref holds a preferred age range in whichever shape the profile
// stored it: free text such as "25-35" or "30+", or a {min,max} object.
// The zero value means no preference was stated. Any other JSON shape is
// kept as-is and reported as malformed when the range is parsed.
type AgeRangePref struct {
	Text   string
	Bounds *AgeBounds

	raw string
}

// RangeText builds a free-text range preference.
func RangeText(s string) AgeRangePref {
	return AgeRangePref{Text: s}
}

// RangeBounds builds a structured range preference. hi <= 0 means open-ended.
func RangeBounds(lo, hi int) AgeRangePref {
	b := &AgeBounds{Min: &lo}
	if hi > 0 {
		b.Max = &hi
	}
	return AgeRangePref{Bounds: b}
}

// IsZero reports whether no range was stated at all.
func (s AgeRangePref) IsZero() bool {
	return strings.TrimSpace(s.Text) == "" && s.Bounds == nil && s.raw == ""
}

func (s AgeRangePref) MarshalJSON() ([]byte, error) {
	switch {
	case s.Bounds != nil:
		return json.Marshal(s.Bounds)
	case s.Text != "":
		return json.Marshal(s.Text)
	case s.raw != "":
		return []byte(s.raw), nil
	default:
		return []byte("null"), nil
	}
}

func (s *AgeRangePref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = AgeRangePref{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		return json.Unmarshal(data, &s.Text)
	case '{':
		var b AgeBounds
		if err := json.Unmarshal(data, &b); err != nil {
			s.raw = string(data)
			return nil
		}
		s.Bounds = &b
		return nil
	default:
		s.raw = string(data)
		return nil
	}
}

// Tier is the qualitative bucket of an overall score.
type Tier string

const (
	TierHigh    Tier = "HIGH"
	TierMedium  Tier = "MEDIUM"
	TierLow     Tier = "LOW"
	TierMinimal Tier = "MINIMAL"
)

// Factor names one scored compatibility dimension.
type Factor string

const (
	FactorInterests    Factor = "interests"
	FactorLocation     Factor = "location"
	FactorAge          Factor = "age"
	FactorRelationship Factor = "relationship"
	FactorOrientation  Factor = "orientation"
	FactorLifestyle    Factor = "lifestyle"
)

// Factors lists every factor in aggregation order.
var Factors = []Factor{
	FactorInterests,
	FactorLocation,
	FactorAge,
	FactorRelationship,
	FactorOrientation,
	FactorLifestyle,
}

type InterestsDetail struct {
	Score  int      `json:"score"`
	Common []string `json:"common"`
	Total  int      `json:"total"`
}

type LocationDetail struct {
	Score int  `json:"score"`
	Match bool `json:"match"`
}

type AgeDetail struct {
	Score      int  `json:"score"`
	Age        int  `json:"age"`
	Compatible bool `json:"compatible"`
}

type RelationshipDetail struct {
	Score int  `json:"score"`
	Match bool `json:"match"`
}

type OrientationDetail struct {
	Score int  `json:"score"`
	Match bool `json:"match"`
}

type LifestyleDetail struct {
	Score   int  `json:"score"`
	Smoking bool `json:"smoking"`
	Alcohol bool `json:"alcohol"`
}

// Details is the per-factor breakdown of one pairwise score.
type Details struct {
	Interests    InterestsDetail    `json:"interests"`
	Location     LocationDetail     `json:"location"`
	Age          AgeDetail          `json:"age"`
	Relationship RelationshipDetail `json:"relationship"`
	Orientation  OrientationDetail  `json:"orientation"`
	Lifestyle    LifestyleDetail    `json:"lifestyle"`
}

// Score returns the sub-score of a single factor.
func (d *Details) Score(f Factor) int {
	switch f {
	case FactorInterests:
		return d.Interests.Score
	case FactorLocation:
		return d.Location.Score
	case FactorAge:
		return d.Age.Score
	case FactorRelationship:
		return d.Relationship.Score
	case FactorOrientation:
		return d.Orientation.Score
	case FactorLifestyle:
		return d.Lifestyle.Score
	}
	return 0
}

// CompatibilityResult is the aggregate score for one pair of profiles.
type CompatibilityResult struct {
	OverallScore int      `json:"overallScore"`
	Tier         Tier     `json:"tier"`
	Details      *Details `json:"details,omitempty"`
}

// Match is one ranked candidate in a MatchSummary.
type Match struct {
	CandidateID string   `json:"candidateId"`
	MatchScore  int      `json:"matchScore"`
	Tier        Tier     `json:"tier"`
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	ProfilePic  string   `json:"profilePic,omitempty"`
	Location    string   `json:"location,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Details     *Details `json:"details,omitempty"`
}

// MatchSummary is the ranked result of scoring one requester against a pool.
type MatchSummary struct {
	Matches   []Match `json:"matches"`
	Total     int     `json:"total"`
	High      int     `json:"high"`
	Medium    int     `json:"medium"`
	Low       int     `json:"low"`
	Minimal   int     `json:"minimal"`
	Average   int     `json:"average"`
	BestMatch *Match  `json:"bestMatch"`
	Skipped   int     `json:"skipped"`
}
