package models

// Whiskey is a single catalog entry. The ID and CreatedAt are assigned by the
// catalog repository at creation time and never change afterwards.
type Whiskey struct {
	ID          string   `bson:"_id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Distillery  string   `bson:"distillery" json:"distillery"`
	Type        string   `bson:"type" json:"type"`
	Region      string   `bson:"region" json:"region"`
	Age         *int     `bson:"age,omitempty" json:"age,omitempty"`
	Abv         float64  `bson:"abv" json:"abv"`
	Description string   `bson:"description" json:"description"`
	Attributes  []string `bson:"attributes" json:"attributes"`
	ImageURL    string   `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   int64    `bson:"createdAt" json:"createdAt"`
}

// AgeYears returns the age with a missing age treated as 0, which is how the
// age sort ranks whiskeys without an age statement.
func (w *Whiskey) AgeYears() int {
	if w.Age == nil {
		return 0
	}
	return *w.Age
}

// WhiskeyRequest is the admin create/update payload. Id and timestamp are
// intentionally absent - the repository assigns both.
type WhiskeyRequest struct {
	Name        string   `json:"name"`
	Distillery  string   `json:"distillery"`
	Type        string   `json:"type"`
	Region      string   `json:"region"`
	Age         *int     `json:"age,omitempty"`
	Abv         float64  `json:"abv"`
	Description string   `json:"description"`
	Attributes  []string `json:"attributes"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

// Validate trims the free-text fields and reports whether every required
// field is present. Age is optional; everything else mirrors the required
// marks on the add-whiskey form.
func (r *WhiskeyRequest) Validate() bool {
	r.Name = trim(r.Name)
	r.Distillery = trim(r.Distillery)
	r.Type = trim(r.Type)
	r.Region = trim(r.Region)
	r.Description = trim(r.Description)
	if r.Name == "" || r.Distillery == "" || r.Type == "" || r.Region == "" || r.Description == "" {
		return false
	}
	if r.Abv <= 0 {
		return false
	}
	if r.Age != nil && *r.Age <= 0 {
		return false
	}
	return true
}
