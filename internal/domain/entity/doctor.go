package entity

import "strings"

// Doctor is immutable reference data; the store never mutates it at runtime.
type Doctor struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	Location        string   `json:"location"`
	Rating          float64  `json:"rating"`
	YearsExperience int      `json:"years_experience"`
	Image           string   `json:"image"`
	AvailableDates  []string `json:"available_dates"` // Format: YYYY-MM-DD, ordered
}

// DoctorFilter is a domain-level filter for querying doctors.
// Empty fields impose no constraint; set fields compose with AND.
type DoctorFilter struct {
	Specialty string // exact match
	Location  string // case-insensitive substring
	Search    string // case-insensitive substring over name or specialty
}

// Matches reports whether the doctor satisfies every set predicate.
func (f DoctorFilter) Matches(d Doctor) bool {
	if f.Specialty != "" && d.Specialty != f.Specialty {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(d.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Specialty), term) {
			return false
		}
	}
	return true
}
