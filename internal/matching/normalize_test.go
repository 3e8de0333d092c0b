package matching

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeOn(t *testing.T) {
	asOf := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday already passed", time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC), 26},
		{"birthday today", time.Date(2000, time.October, 14, 0, 0, 0, 0, time.UTC), 26},
		{"birthday tomorrow", time.Date(2000, time.October, 15, 0, 0, 0, 0, time.UTC), 25},
		{"later month", time.Date(2000, time.December, 1, 0, 0, 0, 0, time.UTC), 25},
		{"born in the future", time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeOn(tt.dob, asOf))
		})
	}
}

func TestParseAgeRange(t *testing.T) {
	tests := []struct {
		name    string
		pref    AgeRangePref
		want    *AgeRange
		wantErr bool
	}{
		{"empty", AgeRangePref{}, nil, false},
		{"blank text", RangeText("   "), nil, false},
		{"simple", RangeText("25-35"), &AgeRange{Min: 25, Max: 35}, false},
		{"spaces and suffix", RangeText(" 20 - 30 years"), &AgeRange{Min: 20, Max: 30}, false},
		{"plus suffix", RangeText("30+"), &AgeRange{Min: 30, Max: OpenEnded}, false},
		{"trailing hyphen", RangeText("30-"), &AgeRange{Min: 30, Max: OpenEnded}, false},
		{"plus after hyphen", RangeText("40-+"), &AgeRange{Min: 40, Max: OpenEnded}, false},
		{"single age", RangeText("30"), &AgeRange{Min: 30, Max: 30}, false},
		{"not a number", RangeText("any"), nil, true},
		{"inverted", RangeText("35-25"), nil, true},
		{"missing separator", RangeText("30 40"), nil, true},
		{"bad upper bound", RangeText("30-old"), nil, true},
		{"extra bound", RangeText("25-35-40"), nil, true},
		{"unreadable shape", AgeRangePref{raw: "30"}, nil, true},
		{"bounds", RangeBounds(20, 30), &AgeRange{Min: 20, Max: 30}, false},
		{"bounds open", RangeBounds(25, 0), &AgeRange{Min: 25, Max: OpenEnded}, false},
		{"bounds inverted", RangeBounds(40, 30), nil, true},
		{"bounds without min", AgeRangePref{Bounds: &AgeBounds{}}, &AgeRange{Min: 0, Max: OpenEnded}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAgeRange(tt.pref)
			if tt.wantErr {
				var mre *MalformedRangeError
				require.ErrorAs(t, err, &mre)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgeRange_Contains(t *testing.T) {
	r := AgeRange{Min: 20, Max: 30}
	assert.True(t, r.Contains(20))
	assert.True(t, r.Contains(30))
	assert.False(t, r.Contains(19))
	assert.False(t, r.Contains(31))
	assert.False(t, r.IsOpenEnded())

	open := AgeRange{Min: 40, Max: OpenEnded}
	assert.True(t, open.Contains(120))
	assert.True(t, open.IsOpenEnded())
}

func TestNormalize_RequiredFields(t *testing.T) {
	t.Run("nil profile", func(t *testing.T) {
		_, err := Normalize(nil, refNow)
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := Normalize(&UserProfile{ID: "  ", DateOfBirth: bornYearsAgo(30)}, refNow)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "id", ve.Field)
	})

	t.Run("missing date of birth", func(t *testing.T) {
		_, err := Normalize(&UserProfile{ID: "u1"}, refNow)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "dateOfBirth", ve.Field)
		assert.Equal(t, "u1", ve.ProfileID)
		assert.Contains(t, err.Error(), "dateOfBirth")
	})
}

func TestNormalize_MinimalProfile(t *testing.T) {
	p := &UserProfile{ID: "u1", DateOfBirth: bornYearsAgo(30)}
	n := mustNormalize(t, p)

	assert.Same(t, p, n.Profile())
	assert.Equal(t, "u1", n.ID)
	assert.Equal(t, 30, n.Age)
	assert.Empty(t, n.Location)
	assert.Empty(t, n.Interests)
	assert.Nil(t, n.AgeRange)
	assert.NoError(t, n.AgeRangeErr)
	assert.Empty(t, n.Relationship)
}

func TestNormalize_TextFields(t *testing.T) {
	n := mustNormalize(t, &UserProfile{
		ID:           "u1",
		DateOfBirth:  bornYearsAgo(30),
		Location:     "  New   York ",
		Relationship: "Long-Term",
		Orientation:  " STRAIGHT",
		Smoking:      "Never ",
	})

	assert.Equal(t, "new york", n.Location)
	assert.Equal(t, "long-term", n.Relationship)
	assert.Equal(t, "straight", n.Orientation)
	assert.Equal(t, "never", n.Smoking)
	assert.Empty(t, n.Alcohol)
}

func TestNormalize_InterestsDedupeKeepsFirstCasing(t *testing.T) {
	n := mustNormalize(t, &UserProfile{
		ID:          "u1",
		DateOfBirth: bornYearsAgo(30),
		Interests:   []string{"Music", " music ", "", "Board  Games", "TRAVEL", "board games"},
	})

	require.Len(t, n.Interests, 3)
	assert.Equal(t, Interest{Key: "music", Label: "Music"}, n.Interests[0])
	assert.Equal(t, Interest{Key: "board games", Label: "Board  Games"}, n.Interests[1])
	assert.Equal(t, Interest{Key: "travel", Label: "TRAVEL"}, n.Interests[2])
}

func TestNormalize_MalformedRangeDegrades(t *testing.T) {
	n, err := Normalize(&UserProfile{
		ID:                "u1",
		DateOfBirth:       bornYearsAgo(30),
		PreferredAgeRange: RangeText("whatever"),
	}, refNow)

	require.NoError(t, err)
	assert.Nil(t, n.AgeRange)

	var mre *MalformedRangeError
	require.True(t, errors.As(n.AgeRangeErr, &mre))
	assert.Equal(t, "whatever", mre.Input)
}

func TestUserProfile_UnmarshalJSON(t *testing.T) {
	raw := `[
		{"id": "a", "dateOfBirth": "1999-05-01", "preferredAgeRange": "25-35", "interests": ["Music"]},
		{"id": "b", "dateOfBirth": "1998-02-03T00:00:00Z", "preferredAgeRange": {"min": 22, "max": 30}},
		{"id": "c", "dateOfBirth": null, "preferredAgeRange": null},
		{"id": "d", "dateOfBirth": ""}
	]`

	var profiles []UserProfile
	require.NoError(t, json.Unmarshal([]byte(raw), &profiles))
	require.Len(t, profiles, 4)

	assert.Equal(t, NewDate(1999, time.May, 1), profiles[0].DateOfBirth)
	assert.Equal(t, "25-35", profiles[0].PreferredAgeRange.Text)

	assert.Equal(t, 1998, profiles[1].DateOfBirth.Year())
	require.NotNil(t, profiles[1].PreferredAgeRange.Bounds)
	assert.Equal(t, 22, *profiles[1].PreferredAgeRange.Bounds.Min)
	assert.Equal(t, 30, *profiles[1].PreferredAgeRange.Bounds.Max)

	assert.True(t, profiles[2].DateOfBirth.IsZero())
	assert.True(t, profiles[2].PreferredAgeRange.IsZero())
	assert.True(t, profiles[3].DateOfBirth.IsZero())
}

func TestUserProfile_UnmarshalJSONKeepsBadShapes(t *testing.T) {
	raw := `[
		{"id": "a", "dateOfBirth": "1999-05-01", "preferredAgeRange": 30},
		{"id": "b", "dateOfBirth": "1999-05-01", "preferredAgeRange": {"min": "25"}},
		{"id": "c", "dateOfBirth": "04/03/1999"},
		{"id": "d", "dateOfBirth": 1999}
	]`

	var profiles []*UserProfile
	require.NoError(t, json.Unmarshal([]byte(raw), &profiles))
	require.Len(t, profiles, 4)

	for _, p := range profiles[:2] {
		assert.False(t, p.PreferredAgeRange.IsZero(), p.ID)
		n, err := Normalize(p, refNow)
		require.NoError(t, err, p.ID)
		assert.Nil(t, n.AgeRange, p.ID)
		var mre *MalformedRangeError
		assert.ErrorAs(t, n.AgeRangeErr, &mre, p.ID)
	}

	for _, p := range profiles[2:] {
		assert.True(t, p.DateOfBirth.IsZero(), p.ID)
		_, err := Normalize(p, refNow)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, p.ID)
		assert.Equal(t, "dateOfBirth", ve.Field)
	}
	assert.Equal(t, "04/03/1999", profiles[2].DateOfBirth.Unparsed())

	_, err := Normalize(profiles[2], refNow)
	assert.EqualError(t, err, `validation error: profile c: unrecognized dateOfBirth "04/03/1999"`)

	out, err := json.Marshal(profiles[0])
	require.NoError(t, err)
	assert.Contains(t, string(out), `"preferredAgeRange":30`)
}

func TestUserProfile_MarshalJSON(t *testing.T) {
	p := UserProfile{ID: "a", DateOfBirth: NewDate(1999, time.May, 1), PreferredAgeRange: RangeBounds(20, 30)}

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"dateOfBirth":"1999-05-01"`)
	assert.Contains(t, string(out), `"preferredAgeRange":{"min":20,"max":30}`)

	var back UserProfile
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, p.DateOfBirth, back.DateOfBirth)
	assert.Equal(t, 30, *back.PreferredAgeRange.Bounds.Max)
}
