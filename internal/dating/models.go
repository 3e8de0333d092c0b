package dating

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"

	"github.com/imadgeboyega/kiekky-matcher/internal/matching"
)

// profileRow mirrors one row of user_profiles
type profileRow struct {
	ID                string         `db:"id"`
	FirstName         sql.NullString `db:"first_name"`
	LastName          sql.NullString `db:"last_name"`
	DateOfBirth       sql.NullTime   `db:"date_of_birth"`
	Gender            sql.NullString `db:"gender"`
	LookingFor        sql.NullString `db:"looking_for"`
	PreferredAgeRange sql.NullString `db:"preferred_age_range"`
	PreferredAgeMin   sql.NullInt32  `db:"preferred_age_min"`
	PreferredAgeMax   sql.NullInt32  `db:"preferred_age_max"`
	Location          sql.NullString `db:"location"`
	Interests         pq.StringArray `db:"interests"`
	Relationship      sql.NullString `db:"relationship"`
	Orientation       sql.NullString `db:"orientation"`
	Smoking           sql.NullString `db:"smoking"`
	Alcohol           sql.NullString `db:"alcohol"`
	Bio               sql.NullString `db:"bio"`
	ProfilePic        sql.NullString `db:"profile_pic"`
}

// toProfile converts the row into the record the engine scores.
// A non-empty text range wins over the min/max columns.
func (r *profileRow) toProfile() *matching.UserProfile {
	p := &matching.UserProfile{
		ID:           r.ID,
		FirstName:    r.FirstName.String,
		LastName:     r.LastName.String,
		Gender:       r.Gender.String,
		LookingFor:   r.LookingFor.String,
		Location:     r.Location.String,
		Interests:    []string(r.Interests),
		Relationship: r.Relationship.String,
		Orientation:  r.Orientation.String,
		Smoking:      r.Smoking.String,
		Alcohol:      r.Alcohol.String,
		Bio:          r.Bio.String,
		ProfilePic:   r.ProfilePic.String,
	}

	if r.DateOfBirth.Valid {
		t := r.DateOfBirth.Time
		p.DateOfBirth = matching.NewDate(t.Year(), t.Month(), t.Day())
	}

	switch {
	case strings.TrimSpace(r.PreferredAgeRange.String) != "":
		p.PreferredAgeRange = matching.RangeText(r.PreferredAgeRange.String)
	case r.PreferredAgeMin.Valid || r.PreferredAgeMax.Valid:
		b := &matching.AgeBounds{}
		if r.PreferredAgeMin.Valid {
			v := int(r.PreferredAgeMin.Int32)
			b.Min = &v
		}
		if r.PreferredAgeMax.Valid {
			v := int(r.PreferredAgeMax.Int32)
			b.Max = &v
		}
		p.PreferredAgeRange = matching.AgeRangePref{Bounds: b}
	}

	return p
}
