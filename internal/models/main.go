// Package models defines the core data structures for users, children,
// medications and sleep entries, together with the pure input validation
// applied before anything reaches storage.
package models

import "time"

// ValidationError describes a structurally invalid input payload.
// The message is safe to return to the client verbatim.
type ValidationError string

// Error implements the error interface.
func (e ValidationError) Error() string { return string(e) }

// Shared validation messages.
const (
	ErrFieldsRequired ValidationError = "All fields are required"
	ErrInvalidDate    ValidationError = "Invalid date format"
)

// dateLayouts are the accepted birthDate and nextDose formats.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// sleepDateLayout is the storage format for sleep entry dates.
const sleepDateLayout = "2006-01-02"

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Username is the login name chosen by the user.
	Username string `json:"username"`
	// Email is the user's contact address.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`
}

// Gender defines the set of valid child gender values.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the enumerated gender values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// SleepQuality defines the set of valid sleep quality values.
type SleepQuality string

const (
	SleepGood   SleepQuality = "good"
	SleepMedium SleepQuality = "medium"
	SleepBad    SleepQuality = "bad"
)

// Valid reports whether q is one of the enumerated quality values.
func (q SleepQuality) Valid() bool {
	switch q {
	case SleepGood, SleepMedium, SleepBad:
		return true
	}
	return false
}

// Child is a child profile owned by exactly one user.
type Child struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ChildName string    `json:"childName"`
	BirthDate time.Time `json:"birthDate"`
	Gender    Gender    `json:"gender"`
}

// Medication is a medication course recorded for a child.
type Medication struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ChildID    string    `json:"childId"`
	Name       string    `json:"name"`
	Dosage     string    `json:"dosage"`
	Frequency  string    `json:"frequency"`
	CourseDays int       `json:"courseDays"`
	NextDose   time.Time `json:"nextDose"`
}

// SleepEntry is one night of sleep recorded for a child.
// Date is kept as a "YYYY-MM-DD" string; listings sort on it descending.
type SleepEntry struct {
	ID         string       `json:"id"`
	UserID     string       `json:"userId"`
	ChildID    string       `json:"childId"`
	Date       string       `json:"date"`
	SleepHours float64      `json:"sleepHours"`
	Quality    SleepQuality `json:"quality"`
}

// ChildInput is the JSON payload for creating a child profile.
type ChildInput struct {
	UserID    string `json:"userId"`
	ChildName string `json:"childName"`
	BirthDate string `json:"birthDate"`
	Gender    Gender `json:"gender"`
}

// Parse validates the payload and converts it into a Child without an ID.
// All fields are required, the birth date must be a real calendar date and
// the gender must be one of the enumerated values.
func (in ChildInput) Parse() (Child, error) {
	if in.UserID == "" || in.ChildName == "" || in.BirthDate == "" || in.Gender == "" {
		return Child{}, ErrFieldsRequired
	}
	birthDate, err := parseDate(in.BirthDate)
	if err != nil {
		return Child{}, ErrInvalidDate
	}
	if !in.Gender.Valid() {
		return Child{}, ValidationError("gender must be Male, Female or Other")
	}
	return Child{
		UserID:    in.UserID,
		ChildName: in.ChildName,
		BirthDate: birthDate,
		Gender:    in.Gender,
	}, nil
}

// MedicationInput is the JSON payload for recording a medication.
type MedicationInput struct {
	UserID     string `json:"userId"`
	ChildID    string `json:"childId"`
	Name       string `json:"name"`
	Dosage     string `json:"dosage"`
	Frequency  string `json:"frequency"`
	CourseDays int    `json:"courseDays"`
	NextDose   string `json:"nextDose"`
}

// Parse validates the payload and converts it into a Medication without an ID.
func (in MedicationInput) Parse() (Medication, error) {
	if in.UserID == "" || in.ChildID == "" || in.Name == "" ||
		in.Dosage == "" || in.Frequency == "" || in.NextDose == "" {
		return Medication{}, ErrFieldsRequired
	}
	if in.CourseDays <= 0 {
		return Medication{}, ValidationError("courseDays must be a positive number")
	}
	nextDose, err := parseDate(in.NextDose)
	if err != nil {
		return Medication{}, ErrInvalidDate
	}
	return Medication{
		UserID:     in.UserID,
		ChildID:    in.ChildID,
		Name:       in.Name,
		Dosage:     in.Dosage,
		Frequency:  in.Frequency,
		CourseDays: in.CourseDays,
		NextDose:   nextDose,
	}, nil
}

// SleepInput is the JSON payload for recording a sleep entry.
type SleepInput struct {
	UserID     string       `json:"userId"`
	ChildID    string       `json:"childId"`
	Date       string       `json:"date"`
	SleepHours float64      `json:"sleepHours"`
	Quality    SleepQuality `json:"quality"`
}

// Parse validates the payload and converts it into a SleepEntry without an ID.
// The date must already be in "YYYY-MM-DD" form so that listings can order
// entries lexicographically.
func (in SleepInput) Parse() (SleepEntry, error) {
	if in.UserID == "" || in.ChildID == "" || in.Date == "" || in.Quality == "" {
		return SleepEntry{}, ErrFieldsRequired
	}
	if in.SleepHours <= 0 {
		return SleepEntry{}, ValidationError("sleepHours must be a positive number")
	}
	if _, err := time.Parse(sleepDateLayout, in.Date); err != nil {
		return SleepEntry{}, ErrInvalidDate
	}
	if !in.Quality.Valid() {
		return SleepEntry{}, ValidationError("quality must be good, medium or bad")
	}
	return SleepEntry{
		UserID:     in.UserID,
		ChildID:    in.ChildID,
		Date:       in.Date,
		SleepHours: in.SleepHours,
		Quality:    in.Quality,
	}, nil
}

// SignupInput is the JSON payload for creating a user account.
type SignupInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate checks that all fields are present and the two passwords match.
func (in SignupInput) Validate() error {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return ErrFieldsRequired
	}
	if in.Password != in.ConfirmPassword {
		return ValidationError("Passwords do not match")
	}
	return nil
}

// parseDate accepts a plain calendar date or an RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
