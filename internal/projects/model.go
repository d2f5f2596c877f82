package projects

import "time"

type Project struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"image_url" json:"imageUrl"`
	ImageID     string    `bson:"image_id" json:"cloudinaryId"`
	Tech        []string  `bson:"tech" json:"tech"`
	GitHub      string    `bson:"github,omitempty" json:"github"`
	Demo        string    `bson:"demo,omitempty" json:"demo"`
	Order       int       `bson:"order" json:"order"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// GitHub and Demo are optional links; an empty string means "not shown".
type CreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"required,url"`
	ImageID     string   `json:"cloudinaryId" validate:"required"`
	Tech        []string `json:"tech" validate:"required,min=1,dive,required"`
	GitHub      string   `json:"github" validate:"omitempty,url"`
	Demo        string   `json:"demo" validate:"omitempty,url"`
	Order       *int     `json:"order" validate:"omitempty,gte=0"`
}

type UpdateRequest struct {
	ID          string    `json:"id" validate:"required"`
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Description *string   `json:"description" validate:"omitempty,min=1"`
	ImageURL    *string   `json:"imageUrl" validate:"omitempty,url"`
	ImageID     *string   `json:"cloudinaryId" validate:"omitempty,min=1"`
	Tech        *[]string `json:"tech" validate:"omitempty,min=1,dive,required"`
	GitHub      *string   `json:"github" validate:"omitempty,url"`
	Demo        *string   `json:"demo" validate:"omitempty,url"`
	Order       *int      `json:"order" validate:"omitempty,gte=0"`
}
