package contributions

import "time"

// Contribution is an open-source or community contribution card. Unlike the
// other content types it carries no image and no display order; the public
// list is sorted by creation time.
type Contribution struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Title          string    `bson:"title" json:"title"`
	Description    string    `bson:"description" json:"description"`
	Organization   string    `bson:"organization" json:"organization"`
	Type           string    `bson:"type" json:"type"`
	Tech           []string  `bson:"tech" json:"tech"`
	GitHub         string    `bson:"github,omitempty" json:"github"`
	Demo           string    `bson:"demo,omitempty" json:"demo"`
	PullRequestURL string    `bson:"pull_request_url,omitempty" json:"pullRequestUrl"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// StatusPending is the default when a create request omits status.
const StatusPending = "Pending"

type CreateRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Organization   string   `json:"organization" validate:"required"`
	Type           string   `json:"type" validate:"required,oneof='Open Source' Community Research Documentation 'Bug Fix' Feature Other"`
	Tech           []string `json:"tech" validate:"required,min=1,dive,required"`
	GitHub         string   `json:"github" validate:"omitempty,url"`
	Demo           string   `json:"demo" validate:"omitempty,url"`
	PullRequestURL string   `json:"pullRequestUrl" validate:"omitempty,url"`
	Status         string   `json:"status" validate:"omitempty,oneof=Merged Pending Closed Draft"`
}

type UpdateRequest struct {
	ID             string    `json:"id" validate:"required"`
	Title          *string   `json:"title" validate:"omitempty,min=1"`
	Description    *string   `json:"description" validate:"omitempty,min=1"`
	Organization   *string   `json:"organization" validate:"omitempty,min=1"`
	Type           *string   `json:"type" validate:"omitempty,oneof='Open Source' Community Research Documentation 'Bug Fix' Feature Other"`
	Tech           *[]string `json:"tech" validate:"omitempty,min=1,dive,required"`
	GitHub         *string   `json:"github" validate:"omitempty,url"`
	Demo           *string   `json:"demo" validate:"omitempty,url"`
	PullRequestURL *string   `json:"pullRequestUrl" validate:"omitempty,url"`
	Status         *string   `json:"status" validate:"omitempty,oneof=Merged Pending Closed Draft"`
}
