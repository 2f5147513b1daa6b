package medicalrecord

import "time"

// Record maps to the medical_records table.
type Record struct {
	ID          int64     `db:"id" json:"id"`
	PatientID   int64     `db:"patient_id" json:"patient_id"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Diagnosis maps to the diagnoses table.
type Diagnosis struct {
	ID        int64     `db:"id" json:"id"`
	RecordID  int64     `db:"record_id" json:"record_id"`
	DoctorID  int64     `db:"doctor_id" json:"doctor_id"`
	Diagnosis string    `db:"diagnosis" json:"diagnosis"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DoctorRef identifies a doctor inside a record view: either one holding an
// access grant or one who wrote a diagnosis.
type DoctorRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DiagnosisView is one diagnosis as exposed in a record listing.
type DiagnosisView struct {
	ID        int64     `json:"id"`
	Diagnosis string    `json:"diagnosis"`
	Doctor    DoctorRef `json:"doctor"`
	CreatedAt string    `json:"created_at"`
}

// RecordView is one medical record with its access grants and diagnoses.
type RecordView struct {
	ID          int64           `json:"id"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
	Doctors     []DoctorRef     `json:"doctors"`
	Diagnoses   []DiagnosisView `json:"diagnoses"`
}

const timestampLayout = "2006-01-02 15:04:05"
