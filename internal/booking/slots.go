package booking

// Bookable half-hour slots: a morning band and an afternoon band with a
// lunch gap. Slot choice is deliberately independent of a doctor's
// advertised available dates.
var timeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM", "5:00 PM",
}

// Visit reason catalogue offered on step 2; free text is still accepted.
var visitReasons = []string{
	"Annual Checkup",
	"Follow-up",
	"New Symptoms",
	"Consultation",
	"Test Results",
	"Prescription Refill",
	"Other",
}

// TimeSlots returns the fixed bookable slot list.
func TimeSlots() []string {
	return append([]string(nil), timeSlots...)
}

// VisitReasons returns the reason catalogue.
func VisitReasons() []string {
	return append([]string(nil), visitReasons...)
}

// ValidTimeSlot reports whether t is one of the offered slots.
func ValidTimeSlot(t string) bool {
	for _, slot := range timeSlots {
		if slot == t {
			return true
		}
	}
	return false
}
