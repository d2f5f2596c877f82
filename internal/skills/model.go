package skills

import "time"

// Skill is one technology card on the public site. The JSON names mirror the
// frontend contract; the image handle keeps its historical wire name
// "cloudinaryId" even though the asset host is pluggable.
type Skill struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	ImageURL  string    `bson:"image_url" json:"imageUrl"`
	ImageID   string    `bson:"image_id" json:"cloudinaryId"`
	Order     int       `bson:"order" json:"order"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type CreateRequest struct {
	Name     string `json:"name" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
	ImageID  string `json:"cloudinaryId" validate:"required"`
	Order    *int   `json:"order" validate:"omitempty,gte=0"`
}

// UpdateRequest carries the identifier plus the fields to change; nil fields
// are left untouched.
type UpdateRequest struct {
	ID       string  `json:"id" validate:"required"`
	Name     *string `json:"name" validate:"omitempty,min=1"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
	ImageID  *string `json:"cloudinaryId" validate:"omitempty,min=1"`
	Order    *int    `json:"order" validate:"omitempty,gte=0"`
}
