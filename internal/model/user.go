package model

// User is an account in the backend. HashedPassword is never serialized to
// API responses.
type User struct {
	ID             string `json:"id,omitempty" bson:"-"`
	Username       string `json:"username" bson:"username"`
	Email          string `json:"email" bson:"email"`
	HashedPassword string `json:"-" bson:"hashed_password"`
	IsAdmin        bool   `json:"is_admin" bson:"is_admin"`
	Name           string `json:"name" bson:"name"`
	Surnames       string `json:"surnames" bson:"surnames"`
}
