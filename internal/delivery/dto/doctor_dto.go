package dto

type DoctorResponse struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	Location        string   `json:"location"`
	Rating          float64  `json:"rating"`
	YearsExperience int      `json:"years_experience"`
	Image           string   `json:"image"`
	AvailableDates  []string `json:"available_dates"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// DoctorMetaResponse carries the reference lists the search view renders
// its filter dropdowns from.
type DoctorMetaResponse struct {
	Specialties []string `json:"specialties"`
	Locations   []string `json:"locations"`
}
