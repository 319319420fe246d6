package fakeapi

import (
	"sync"

	"github.com/MKhiriev/go-recovery-companion/internal/utils"
	"github.com/MKhiriev/go-recovery-companion/models"
)

// account is a user that may sign in to the fake API.
type account struct {
	user         models.User
	passwordHash string
}

// patientRecord is everything the /patients/* endpoints serve for one
// account.
type patientRecord struct {
	home        models.Home
	medications []models.Medication
	diet        models.DietPlan
	activities  models.Activities
	profile     models.Profile
}

// DefaultPassword is the password of every seeded account.
const DefaultPassword = "pw"

// defaultPasswordHash is computed once per process; bcrypt is slow on
// purpose and every State seeds the same accounts.
var defaultPasswordHash = sync.OnceValues(func() (string, error) {
	return utils.HashPassword(DefaultPassword)
})

func seedAccounts() ([]account, error) {
	hash, err := defaultPasswordHash()
	if err != nil {
		return nil, err
	}

	return []account{
		{user: models.User{ID: 1, Username: "patient1", Name: "Aziz Karimov", Email: "aziz@example.com", Role: models.RolePatient}, passwordHash: hash},
		{user: models.User{ID: 2, Username: "doctor1", Name: "Dr. Malika Yusupova", Email: "malika@example.com", Role: models.RoleDoctor, Department: "Orthopedics"}, passwordHash: hash},
		{user: models.User{ID: 3, Username: "nurse1", Name: "Dilnoza Rashidova", Role: models.RoleNurse, Department: "Orthopedics"}, passwordHash: hash},
	}, nil
}

// seedRecord returns the demo recovery plan served to every account.
func seedRecord(user models.User) *patientRecord {
	return &patientRecord{
		home: models.Home{
			PatientName: user.DisplayName(),
			RecoveryDay: 5,
			Tasks: []models.Task{
				{ID: 1, Title: "Morning walk, 10 minutes", Completed: true},
				{ID: 2, Title: "Take antibiotics after breakfast"},
				{ID: 3, Title: "Knee flexion exercises"},
				{ID: 4, Title: "Drink 2 liters of water"},
			},
			MedicationsToday: 3,
			NextAppointment:  "2026-05-12 10:30",
		},
		medications: []models.Medication{
			{ID: 1, Name: "Amoxicillin", Dosage: "500 mg", Time: "08:00", Status: models.MedicationTaken},
			{ID: 2, Name: "Ibuprofen", Dosage: "200 mg", Time: "14:00", Status: models.MedicationUpcoming},
			{ID: 3, Name: "Enoxaparin", Dosage: "40 mg", Time: "20:00", Status: models.MedicationUpcoming},
		},
		diet: models.DietPlan{
			DietType:      "High-protein, soft foods",
			DailyCalories: "2000-2200 kcal",
			DoctorNote:    "Avoid alcohol while taking antibiotics.",
			Meals: []models.Meal{
				{Name: "Breakfast", Time: "08:00", Foods: []string{"Oatmeal", "Boiled egg", "Green tea"}},
				{Name: "Lunch", Time: "13:00", Foods: []string{"Chicken soup", "Steamed vegetables"}},
				{Name: "Dinner", Time: "19:00", Foods: []string{"Baked fish", "Rice", "Yogurt"}},
			},
			AllowedFoods:   []string{"Lean meat", "Fish", "Dairy", "Fresh fruit"},
			ForbiddenFoods: []string{"Alcohol", "Fried food", "Spicy food"},
		},
		activities: models.Activities{
			Allowed: []models.Activity{
				{Name: "Walking", Description: "Short walks with support, up to 15 minutes."},
				{Name: "Breathing exercises", Description: "Three sets a day."},
			},
			Restricted: []models.Activity{
				{Name: "Running", Description: "Not before week 6."},
				{Name: "Lifting", Description: "Nothing heavier than 5 kg."},
			},
		},
		profile: models.Profile{
			PatientID:        "P-000451",
			Name:             user.DisplayName(),
			DateOfBirth:      "1984-03-17",
			BloodType:        "A+",
			Email:            user.Email,
			Phone:            "+998 90 123 45 67",
			Procedure:        "Total knee replacement",
			SurgeryDate:      "2026-04-26",
			Hospital:         "Tashkent City Hospital",
			Room:             "412",
			PrimarySurgeon:   "Dr. Malika Yusupova",
			PrimaryNurse:     "Dilnoza Rashidova",
			Department:       "Orthopedics",
			EmergencyContact: "Nodira Karimova, +998 90 765 43 21",
		},
	}
}
