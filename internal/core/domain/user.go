package domain

// Directory roles. The enum is enforced only on the dedicated role-update
// path; general updates write the role field as-is (see UserPatch).
const (
	RoleEmployee = "employee"
	RoleHR       = "hr"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the directory roles.
func ValidRole(role string) bool {
	return role == RoleEmployee || role == RoleHR || role == RoleAdmin
}

// BirthDate holds a partially known date of birth. Each field is
// independently nullable.
type BirthDate struct {
	Year  *int `json:"year" bson:"year"`
	Month *int `json:"month" bson:"month"`
	Day   *int `json:"day" bson:"day"`
}

// ManagerRef links a user to their manager. ID is never null: it is the empty
// string when no manager is assigned, the id of an existing user when the
// typed-in name matched one, or a synthesized id for a manager who is not
// (yet) a directory record. The name fields always reflect the last names a
// caller supplied, even when ID points at a record with differently cased
// stored names.
type ManagerRef struct {
	ID        string `json:"id" bson:"id"`
	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`
}

// User is an employee record in the directory. JSON tags follow the public
// wire contract; the password hash is write-only and never serialized.
type User struct {
	ID               string     `json:"_id" bson:"_id"`
	Email            string     `json:"email" bson:"email"`
	PasswordHash     string     `json:"-" bson:"password_hash"`
	FirstName        string     `json:"first_name" bson:"first_name"`
	LastName         string     `json:"last_name" bson:"last_name"`
	FirstNativeName  string     `json:"first_native_name" bson:"first_native_name"`
	LastNativeName   string     `json:"last_native_name" bson:"last_native_name"`
	MiddleNativeName string     `json:"middle_native_name" bson:"middle_native_name"`
	IsRemoteWork     bool       `json:"isRemoteWork" bson:"is_remote_work"`
	Avatar           string     `json:"user_avatar" bson:"user_avatar"`
	Department       string     `json:"department" bson:"department"`
	Building         string     `json:"building" bson:"building"`
	Room             string     `json:"room" bson:"room"`
	BirthDate        BirthDate  `json:"date_birth" bson:"date_birth"`
	DeskNumber       int        `json:"desk_number" bson:"desk_number"`
	Manager          ManagerRef `json:"manager" bson:"manager"`
	Phone            string     `json:"phone" bson:"phone"`
	Telegram         string     `json:"telegram" bson:"telegram"`
	EmployeeNumber   string     `json:"cnumber" bson:"cnumber"`
	Citizenship      string     `json:"citizenship" bson:"citizenship"`
	Visa             []string   `json:"visa" bson:"visa"`
	Role             string     `json:"role" bson:"role"`
}

// NewUser builds a sign-up record with every optional field defaulted.
// Visa is initialised to an empty slice so it serializes as [] rather
// than null.
func NewUser(id, email, passwordHash, firstName, lastName string) *User {
	return &User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Visa:         []string{},
		Role:         RoleEmployee,
	}
}
