package entity

import "slices"

// User is the signed-in parent. It is owned by the session and destroyed on logout.
type User struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Provider ProviderType `json:"provider"`
	Language string       `json:"language,omitempty"`
	Children []Child      `json:"children"`
}

// Child is a child record owned by a User. Display order is insertion order.
type Child struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate,omitempty"` // YYYY-MM-DD
	School    string `json:"school"`
	Grade     int    `json:"grade,omitempty"`
	ClassName string `json:"className,omitempty"`
}

// FindChild returns the index of the child with the given id, or -1.
func (u *User) FindChild(id string) int {
	if u == nil {
		return -1
	}

	return slices.IndexFunc(u.Children, func(c Child) bool { return c.ID == id })
}

// Clone returns a deep copy so state snapshots never share the children slice.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Children = slices.Clone(u.Children)
	if clone.Children == nil {
		clone.Children = []Child{}
	}

	return &clone
}
