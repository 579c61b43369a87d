package model

// User is an account holder. PasswordHash is opaque to this layer (bcrypt
// output produced by the utils package) and is never serialized. Places
// holds the ids of owned places in listing order; the facade appends to it
// when a place is created for this user.
type User struct {
	EntityMeta
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	IsAdmin      bool     `json:"is_admin"`
	Places       []string `json:"places"`
}

// NewUser validates the given fields and returns a User with fresh identity
// and timestamps. The password hash is set by the caller once hashing is
// done.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	fn, err := trimmedName("first_name", firstName)
	if err != nil {
		return nil, err
	}
	ln, err := trimmedName("last_name", lastName)
	if err != nil {
		return nil, err
	}
	em, err := emailAddress(email)
	if err != nil {
		return nil, err
	}
	return &User{
		EntityMeta: NewMeta(),
		FirstName:  fn,
		LastName:   ln,
		Email:      em,
		IsAdmin:    isAdmin,
		Places:     []string{},
	}, nil
}

// UserPatch enumerates the fields a user update may carry. Nil means "leave
// unchanged". Email, Password and IsAdmin are only honored on the admin
// path; the handler enforces that before the facade sees the patch.
type UserPatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	IsAdmin   *bool   `json:"is_admin"`
}

// Apply validates and merges the patch fields into the user, except Password
// which the facade hashes separately. Apply refreshes UpdatedAt when at
// least one field changed.
func (u *User) Apply(p UserPatch) error {
	if p.FirstName != nil {
		v, err := trimmedName("first_name", *p.FirstName)
		if err != nil {
			return err
		}
		u.FirstName = v
	}
	if p.LastName != nil {
		v, err := trimmedName("last_name", *p.LastName)
		if err != nil {
			return err
		}
		u.LastName = v
	}
	if p.Email != nil {
		v, err := emailAddress(*p.Email)
		if err != nil {
			return err
		}
		u.Email = v
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
	if p.FirstName != nil || p.LastName != nil || p.Email != nil || p.IsAdmin != nil {
		u.Touch()
	}
	return nil
}

// AddPlace appends a place id to the owned list, preserving listing order.
func (u *User) AddPlace(placeID string) {
	u.Places = append(u.Places, placeID)
	u.Touch()
}

// RemovePlace drops a place id from the owned list. Removing an id that is
// not present is a no-op.
func (u *User) RemovePlace(placeID string) {
	for i, id := range u.Places {
		if id == placeID {
			u.Places = append(u.Places[:i], u.Places[i+1:]...)
			u.Touch()
			return
		}
	}
}
