package appointment

import "time"

// Appointment statuses. Rows are created pending; cancellation is a hard
// delete, so "cancelled" only ever appears through out-of-band updates.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Appointment maps to the appointments table. The clock time is stored in
// its wire form ("HH:MM", 24-hour).
type Appointment struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patient_id"`
	DoctorID  int64     `db:"doctor_id" json:"doctor_id"`
	Date      time.Time `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	Status    string    `db:"status" json:"status"`
}

// DoctorSummary is the nested doctor block in a patient's appointment list.
type DoctorSummary struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// PatientSummary is the nested patient block in a doctor's appointment list.
type PatientSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PatientView is one row of a patient's appointment list.
type PatientView struct {
	ID     int64         `json:"id"`
	Doctor DoctorSummary `json:"doctor"`
	Date   string        `json:"date"`
	Time   string        `json:"time"`
	Status string        `json:"status"`
}

// DoctorView is one row of a doctor's appointment list.
type DoctorView struct {
	ID      int64          `json:"id"`
	Patient PatientSummary `json:"patient"`
	Date    string         `json:"date"`
	Time    string         `json:"time"`
	Status  string         `json:"status"`
}

const dateLayout = "2006-01-02"
