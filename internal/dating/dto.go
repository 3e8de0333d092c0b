// internal/dating/dto.go
package dating

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/imadgeboyega/kiekky-matcher/internal/matching"
)

// FindMatchesParams are the query parameters of the find endpoint
type FindMatchesParams struct {
	MinThreshold   *int `json:"min_threshold,omitempty" validate:"omitempty,gte=0,lte=100"`
	IncludeDetails bool `json:"details"`
	Limit          int  `json:"limit,omitempty" validate:"gte=0,lte=500"`
}

// ParseFindMatchesParams reads min_threshold, details and limit from q
func ParseFindMatchesParams(q url.Values) (*FindMatchesParams, error) {
	params := &FindMatchesParams{}

	if v := q.Get("min_threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("min_threshold must be an integer")
		}
		params.MinThreshold = &n
	}

	if v := q.Get("details"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("details must be true or false")
		}
		params.IncludeDetails = b
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("limit must be an integer")
		}
		params.Limit = n
	}

	return params, nil
}

// FindOptions converts the params into engine options
func (p *FindMatchesParams) FindOptions() matching.FindOptions {
	return matching.FindOptions{
		MinThreshold:   p.MinThreshold,
		IncludeDetails: p.IncludeDetails,
		Limit:          p.Limit,
	}
}

// CompatibilityResponse wraps a details result
type CompatibilityResponse struct {
	Compatibility *matching.CompatibilityResult `json:"compatibility"`
}
