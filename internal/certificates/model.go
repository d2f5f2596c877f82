package certificates

import "time"

// Certificate's Date is stored as the string "MM/YYYY", matching what the
// frontend renders; anything deriving an ordering from it has to re-parse.
type Certificate struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Organization string    `bson:"organization" json:"organization"`
	ImageURL     string    `bson:"image_url" json:"imageUrl"`
	ImageID      string    `bson:"image_id" json:"cloudinaryId"`
	Date         string    `bson:"date" json:"date"`
	Order        int       `bson:"order" json:"order"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

type CreateRequest struct {
	Name         string `json:"name" validate:"required"`
	Organization string `json:"organization" validate:"required"`
	ImageURL     string `json:"imageUrl" validate:"required,url"`
	ImageID      string `json:"cloudinaryId" validate:"required"`
	Date         string `json:"date" validate:"required,monthyear"`
	Order        *int   `json:"order" validate:"omitempty,gte=0"`
}

type UpdateRequest struct {
	ID           string  `json:"id" validate:"required"`
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Organization *string `json:"organization" validate:"omitempty,min=1"`
	ImageURL     *string `json:"imageUrl" validate:"omitempty,url"`
	ImageID      *string `json:"cloudinaryId" validate:"omitempty,min=1"`
	Date         *string `json:"date" validate:"omitempty,monthyear"`
	Order        *int    `json:"order" validate:"omitempty,gte=0"`
}
