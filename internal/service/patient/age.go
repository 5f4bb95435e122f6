package patient

import "time"

// AgeAt returns full years elapsed between birth and the reference date.
// The birthday itself counts: someone born 2000-06-15 turns 24 on
// 2024-06-15, not the day after.
func AgeAt(birth, on time.Time) int {
	birth = birth.UTC()
	on = on.UTC()

	if on.Before(birth) {
		return 0
	}

	age := on.Year() - birth.Year()
	if on.Month() < birth.Month() ||
		(on.Month() == birth.Month() && on.Day() < birth.Day()) {
		age--
	}
	return age
}

// Age returns the patient's current age.
func Age(birth time.Time) int {
	return AgeAt(birth, time.Now())
}
