package model

type CreateUserRequest struct {
	Name string `json:"name"`
}

type CreateUserResponse struct {
	ID string `json:"id"`
}

type LinkSiblingRequest struct {
	SiblingID string `json:"sibling_id"`
}

type LinkSiblingResponse struct{}
