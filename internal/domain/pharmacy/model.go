package pharmacy

// Pharmacy maps to the pharmacies table.
type Pharmacy struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Address     string `db:"address" json:"address"`
	PhoneNumber string `db:"phone_number" json:"phone_number"`
}

// Patch carries the fields of a partial update. Empty fields are left
// unchanged on the stored row.
type Patch struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}
