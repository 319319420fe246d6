package models

// Task is a single item of the patient's daily checklist on the home
// dashboard.
type Task struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TaskStatusRequest is the request body of POST /patients/task-status/{id}/.
type TaskStatusRequest struct {
	Completed bool `json:"completed"`
}

// Home is the response body of GET /patients/home/.
type Home struct {
	// PatientName is the greeting name shown at the top of the dashboard.
	PatientName string `json:"patient_name,omitempty"`

	// RecoveryDay is the number of days since the procedure.
	RecoveryDay int `json:"recovery_day,omitempty"`

	// Tasks is today's checklist.
	Tasks []Task `json:"tasks"`

	// MedicationsToday is the number of doses scheduled for today.
	MedicationsToday int `json:"medications_today,omitempty"`

	// NextAppointment is a human-readable date of the next appointment.
	NextAppointment string `json:"next_appointment,omitempty"`
}

// Progress returns the number of completed tasks and the completion
// percentage of the checklist. An empty checklist is 0% complete.
func (h Home) Progress() (completed int, percent int) {
	if len(h.Tasks) == 0 {
		return 0, 0
	}
	for _, t := range h.Tasks {
		if t.Completed {
			completed++
		}
	}
	return completed, completed * 100 / len(h.Tasks)
}

// MedicationStatus is the intake state of a scheduled dose.
type MedicationStatus string

const (
	MedicationTaken    MedicationStatus = "taken"
	MedicationUpcoming MedicationStatus = "upcoming"
	MedicationMissed   MedicationStatus = "missed"
)

// Medication is one entry of GET /patients/medications/.
type Medication struct {
	ID     int64            `json:"id"`
	Name   string           `json:"name"`
	Dosage string           `json:"dosage"`
	Time   string           `json:"time"`
	Status MedicationStatus `json:"status"`
}

// Meal is a scheduled meal of a diet plan.
type Meal struct {
	Name  string   `json:"name"`
	Time  string   `json:"time"`
	Foods []string `json:"foods"`
}

// DietPlan is the response body of GET /patients/diet-plan/.
type DietPlan struct {
	DietType       string   `json:"diet_type,omitempty"`
	DailyCalories  string   `json:"daily_calories,omitempty"`
	DoctorNote     string   `json:"doctor_note,omitempty"`
	Meals          []Meal   `json:"meals,omitempty"`
	AllowedFoods   []string `json:"allowed_foods,omitempty"`
	ForbiddenFoods []string `json:"forbidden_foods,omitempty"`
}

// Activity is a physical activity the patient may or may not perform.
type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Activities is the response body of GET /patients/activities/.
type Activities struct {
	Allowed    []Activity `json:"allowed"`
	Restricted []Activity `json:"restricted"`
}

// Profile is the response body of GET /patients/me/.
type Profile struct {
	PatientID        string `json:"patient_id,omitempty"`
	Name             string `json:"name,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	BloodType        string `json:"blood_type,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Procedure        string `json:"procedure,omitempty"`
	SurgeryDate      string `json:"surgery_date,omitempty"`
	Hospital         string `json:"hospital,omitempty"`
	Room             string `json:"room,omitempty"`
	PrimarySurgeon   string `json:"primary_surgeon,omitempty"`
	PrimaryNurse     string `json:"primary_nurse,omitempty"`
	Department       string `json:"department,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}

// ChatRequest is the request body of POST /patients/ai-chat/.
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatAnswer is the response body of POST /patients/ai-chat/.
type ChatAnswer struct {
	Answer string `json:"answer"`
}
