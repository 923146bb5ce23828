package models

import (
	"errors"
	"testing"
	"time"
)

func TestChildInput_Parse(t *testing.T) {
	valid := ChildInput{UserID: "u1", ChildName: "Ana", BirthDate: "2023-01-05", Gender: GenderFemale}

	tests := []struct {
		name    string
		in      ChildInput
		wantErr error
	}{
		{"valid", valid, nil},
		{"missing userId", ChildInput{ChildName: "Ana", BirthDate: "2023-01-05", Gender: GenderFemale}, ErrFieldsRequired},
		{"missing childName", ChildInput{UserID: "u1", BirthDate: "2023-01-05", Gender: GenderFemale}, ErrFieldsRequired},
		{"missing birthDate", ChildInput{UserID: "u1", ChildName: "Ana", Gender: GenderFemale}, ErrFieldsRequired},
		{"missing gender", ChildInput{UserID: "u1", ChildName: "Ana", BirthDate: "2023-01-05"}, ErrFieldsRequired},
		{"unparsable birthDate", ChildInput{UserID: "u1", ChildName: "Ana", BirthDate: "not-a-date", Gender: GenderFemale}, ErrInvalidDate},
		{"impossible birthDate", ChildInput{UserID: "u1", ChildName: "Ana", BirthDate: "2023-02-30", Gender: GenderFemale}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child, err := tt.in.Parse()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v; want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			want := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
			if !child.BirthDate.Equal(want) {
				t.Errorf("BirthDate = %v; want %v", child.BirthDate, want)
			}
		})
	}
}

func TestChildInput_ParseRejectsUnknownGender(t *testing.T) {
	in := ChildInput{UserID: "u1", ChildName: "Ana", BirthDate: "2023-01-05", Gender: "Unknown"}
	_, err := in.Parse()
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Parse() error = %v; want a ValidationError", err)
	}
}

func TestChildInput_ParseAcceptsRFC3339(t *testing.T) {
	in := ChildInput{UserID: "u1", ChildName: "Ana", BirthDate: "2023-01-05T00:00:00Z", Gender: GenderOther}
	child, err := in.Parse()
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if child.BirthDate.Year() != 2023 {
		t.Errorf("unexpected birth date: %v", child.BirthDate)
	}
}

func TestMedicationInput_Parse(t *testing.T) {
	valid := MedicationInput{
		UserID: "u1", ChildID: "c1", Name: "Nurofen",
		Dosage: "5ml", Frequency: "every 8h", CourseDays: 5, NextDose: "2024-05-01T08:00:00Z",
	}

	tests := []struct {
		name    string
		mutate  func(*MedicationInput)
		wantErr error
	}{
		{"valid", func(in *MedicationInput) {}, nil},
		{"missing childId", func(in *MedicationInput) { in.ChildID = "" }, ErrFieldsRequired},
		{"missing name", func(in *MedicationInput) { in.Name = "" }, ErrFieldsRequired},
		{"missing nextDose", func(in *MedicationInput) { in.NextDose = "" }, ErrFieldsRequired},
		{"bad nextDose", func(in *MedicationInput) { in.NextDose = "soon" }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := in.Parse()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Parse() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMedicationInput_ParseRejectsNonPositiveCourse(t *testing.T) {
	for _, days := range []int{0, -3} {
		in := MedicationInput{
			UserID: "u1", ChildID: "c1", Name: "Nurofen",
			Dosage: "5ml", Frequency: "every 8h", CourseDays: days, NextDose: "2024-05-01",
		}
		var verr ValidationError
		if _, err := in.Parse(); !errors.As(err, &verr) {
			t.Errorf("courseDays=%d: error = %v; want a ValidationError", days, err)
		}
	}
}

func TestSleepInput_Parse(t *testing.T) {
	valid := SleepInput{UserID: "u1", ChildID: "c1", Date: "2024-05-01", SleepHours: 7, Quality: SleepGood}

	tests := []struct {
		name    string
		mutate  func(*SleepInput)
		wantErr error
	}{
		{"valid", func(in *SleepInput) {}, nil},
		{"missing date", func(in *SleepInput) { in.Date = "" }, ErrFieldsRequired},
		{"missing quality", func(in *SleepInput) { in.Quality = "" }, ErrFieldsRequired},
		{"bad date format", func(in *SleepInput) { in.Date = "05/01/2024" }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := in.Parse()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Parse() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSleepInput_ParseRejectsBadValues(t *testing.T) {
	base := SleepInput{UserID: "u1", ChildID: "c1", Date: "2024-05-01", SleepHours: 7, Quality: SleepGood}

	zeroHours := base
	zeroHours.SleepHours = 0
	var verr ValidationError
	if _, err := zeroHours.Parse(); !errors.As(err, &verr) {
		t.Errorf("sleepHours=0: error = %v; want a ValidationError", err)
	}

	badQuality := base
	badQuality.Quality = "excellent"
	if _, err := badQuality.Parse(); !errors.As(err, &verr) {
		t.Errorf("quality=excellent: error = %v; want a ValidationError", err)
	}
}

func TestSignupInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      SignupInput
		wantErr bool
	}{
		{"valid", SignupInput{Username: "alice", Email: "a@b.c", Password: "pw", ConfirmPassword: "pw"}, false},
		{"missing email", SignupInput{Username: "alice", Password: "pw", ConfirmPassword: "pw"}, true},
		{"password mismatch", SignupInput{Username: "alice", Email: "a@b.c", Password: "pw", ConfirmPassword: "other"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v; wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnums_Valid(t *testing.T) {
	for _, g := range []Gender{GenderMale, GenderFemale, GenderOther} {
		if !g.Valid() {
			t.Errorf("Gender(%q).Valid() = false", g)
		}
	}
	if Gender("female").Valid() {
		t.Errorf("gender values are case-sensitive")
	}
	for _, q := range []SleepQuality{SleepGood, SleepMedium, SleepBad} {
		if !q.Valid() {
			t.Errorf("SleepQuality(%q).Valid() = false", q)
		}
	}
	if SleepQuality("Good").Valid() {
		t.Errorf("quality values are case-sensitive")
	}
}
