package users

// User is a registered recipient: an email, a password hash and the list of
// topics the user wants digests for. Topics keep their insertion order and
// may contain duplicates, adding the same topic twice is allowed.
type User struct {
	Email        string   `json:"email"`
	PasswordHash string   `json:"passwordHash"`
	Topics       []string `json:"topics"`
}

// Row is one (email, password, topic) tuple, the shape of the legacy flat
// file this store replaced. The admin dump still speaks it: users without
// topics contribute a single row with an empty topic.
type Row struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
}

// Rows flattens the user back to the legacy tabular shape.
func (u User) Rows() []Row {
	if len(u.Topics) == 0 {
		return []Row{{Email: u.Email, Password: u.PasswordHash}}
	}

	rows := make([]Row, len(u.Topics))
	for i, topic := range u.Topics {
		rows[i] = Row{Email: u.Email, Password: u.PasswordHash, Topic: topic}
	}
	return rows
}

type Repository interface {
	// Get returns nil when the email is unknown.
	Get(email string) (*User, error)
	Upsert(*User) error
	List() ([]*User, error)
}
