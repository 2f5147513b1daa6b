package article

// Article maps to the mental_health_articles table.
type Article struct {
	ID       int64  `db:"id" json:"id"`
	ImageURL string `db:"image_url" json:"image_url"`
	Title    string `db:"title" json:"title"`
	Content  string `db:"content" json:"content"`
}

// Patch carries the fields of a partial update. Empty fields are left
// unchanged on the stored row.
type Patch struct {
	ImageURL string `json:"image_url"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}
