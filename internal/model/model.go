// Package model defines the users and boards served by the GraphQL API.
package model

// User is a board author.
type User struct {
	ID        string `yaml:"id" json:"id"`
	FirstName string `yaml:"firstName" json:"firstName"`
	LastName  string `yaml:"lastName" json:"lastName"`
}

// FullName joins the first and last name with a single space.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Board is a post written by a user. UserID is not checked against the user collection.
type Board struct {
	ID      string `yaml:"id" json:"id"`
	Title   string `yaml:"title" json:"title"`
	Content string `yaml:"content,omitempty" json:"content"`
	UserID  string `yaml:"userId" json:"userId"`
}
