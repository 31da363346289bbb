package entity

// LabResult is a single laboratory test result.
type LabResult struct {
	ID     int    `json:"id"`
	Test   string `json:"test"`
	Value  string `json:"value"`
	Unit   string `json:"unit"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Range  string `json:"range"`
}

// VitalsSnapshot is one dated set of vital-sign measurements.
type VitalsSnapshot struct {
	Date        string  `json:"date"`
	Weight      float64 `json:"weight"`
	Height      float64 `json:"height"`
	BMI         float64 `json:"bmi"`
	HeartRate   int     `json:"heart_rate"`
	Temperature float64 `json:"temperature"`
}

// Prescription is an issued medication order.
type Prescription struct {
	ID           int    `json:"id"`
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	PrescribedBy string `json:"prescribed_by"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}

// MedicalRecordSet aggregates the patient's read-only medical history.
type MedicalRecordSet struct {
	LabResults    []LabResult      `json:"lab_results"`
	Vitals        []VitalsSnapshot `json:"vitals"`
	Prescriptions []Prescription   `json:"prescriptions"`
}
