package domain

// BirthDatePatch is a partial update of a birth date. A nil field leaves the
// stored field untouched.
type BirthDatePatch struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}

// UserPatch is a partial update of a user record. A nil field means "absent":
// the stored value is untouched. The nested patchable shapes form a closed
// set (manager, date_birth); unknown keys are rejected at the HTTP boundary
// instead of merged blindly.
//
// Role is a plain scalar here with no enum check: role validation is the
// policy of the dedicated role-update operation only, and the general update
// path writes whatever it is given.
type UserPatch struct {
	Email            *string         `json:"email"`
	FirstName        *string         `json:"first_name"`
	LastName         *string         `json:"last_name"`
	FirstNativeName  *string         `json:"first_native_name"`
	LastNativeName   *string         `json:"last_native_name"`
	MiddleNativeName *string         `json:"middle_native_name"`
	IsRemoteWork     *bool           `json:"isRemoteWork"`
	Avatar           *string         `json:"user_avatar"`
	Department       *string         `json:"department"`
	Building         *string         `json:"building"`
	Room             *string         `json:"room"`
	BirthDate        *BirthDatePatch `json:"date_birth"`
	DeskNumber       *int            `json:"desk_number"`
	Manager          *ManagerPatch   `json:"manager"`
	Phone            *string         `json:"phone"`
	Telegram         *string         `json:"telegram"`
	EmployeeNumber   *string         `json:"cnumber"`
	Citizenship      *string         `json:"citizenship"`
	Visa             *[]string       `json:"visa"`
	Role             *string         `json:"role"`
}

// ApplyPatch merges a partial update into u in place. Scalars and the visa
// list replace wholesale; date_birth merges field-wise; manager is recomputed
// through ResolveManager against the full collection. The collection includes
// u itself, so a user may resolve as their own manager.
// Durable persistence is the caller's responsibility after this returns.
func ApplyPatch(u *User, p UserPatch, all []*User, newID func() string) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.FirstNativeName != nil {
		u.FirstNativeName = *p.FirstNativeName
	}
	if p.LastNativeName != nil {
		u.LastNativeName = *p.LastNativeName
	}
	if p.MiddleNativeName != nil {
		u.MiddleNativeName = *p.MiddleNativeName
	}
	if p.IsRemoteWork != nil {
		u.IsRemoteWork = *p.IsRemoteWork
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.Building != nil {
		u.Building = *p.Building
	}
	if p.Room != nil {
		u.Room = *p.Room
	}
	if p.BirthDate != nil {
		if p.BirthDate.Year != nil {
			u.BirthDate.Year = p.BirthDate.Year
		}
		if p.BirthDate.Month != nil {
			u.BirthDate.Month = p.BirthDate.Month
		}
		if p.BirthDate.Day != nil {
			u.BirthDate.Day = p.BirthDate.Day
		}
	}
	if p.DeskNumber != nil {
		u.DeskNumber = *p.DeskNumber
	}
	if p.Manager != nil {
		u.Manager = ResolveManager(*p.Manager, u.Manager, all, newID)
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Telegram != nil {
		u.Telegram = *p.Telegram
	}
	if p.EmployeeNumber != nil {
		u.EmployeeNumber = *p.EmployeeNumber
	}
	if p.Citizenship != nil {
		u.Citizenship = *p.Citizenship
	}
	if p.Visa != nil {
		u.Visa = *p.Visa
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}
