package domain

import "strings"

// Query is a set of listing criteria. Zero-valued fields impose no
// constraint; a record must satisfy every supplied criterion.
type Query struct {
	Name     string
	Email    string
	Phone    string
	Telegram string

	Building   string
	Room       string
	Department string
}

// IsZero reports whether no criterion was supplied.
func (q Query) IsZero() bool {
	return q == Query{}
}

// FilterUsers narrows users to the records matching q. Name, email, phone and
// telegram match as case-insensitive substrings; building, room and
// department match exactly. The name criterion is tried against the record
// id, first name, last name, and the space-joined native names. The result
// preserves collection order and never mutates the input.
func FilterUsers(users []*User, q Query) []*User {
	if q.IsZero() {
		return users
	}

	out := make([]*User, 0, len(users))
	for _, u := range users {
		if q.Name != "" && !matchesName(u, q.Name) {
			continue
		}
		if q.Email != "" && !containsFold(u.Email, q.Email) {
			continue
		}
		if q.Phone != "" && !containsFold(u.Phone, q.Phone) {
			continue
		}
		if q.Telegram != "" && !containsFold(u.Telegram, q.Telegram) {
			continue
		}
		if q.Building != "" && u.Building != q.Building {
			continue
		}
		if q.Room != "" && u.Room != q.Room {
			continue
		}
		if q.Department != "" && u.Department != q.Department {
			continue
		}
		out = append(out, u)
	}
	return out
}

func matchesName(u *User, needle string) bool {
	return containsFold(u.ID, needle) ||
		containsFold(u.FirstName, needle) ||
		containsFold(u.LastName, needle) ||
		containsFold(nativeFullName(u), needle)
}

// nativeFullName joins the native name parts in first/middle/last order,
// skipping empty parts.
func nativeFullName(u *User) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.FirstNativeName, u.MiddleNativeName, u.LastNativeName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
