package domain

// CarMake is a manufacturer row in the local catalog.
type CarMake struct {
	ID          int64
	Name        string
	Description string
}

// CarModel is a model row referencing its make.
type CarModel struct {
	ID     int64
	MakeID int64
	Name   string
	Type   string // SEDAN | SUV | WAGON | HATCHBACK
	Year   int
}

// CarEntry is the joined read model served on the catalog endpoint.
type CarEntry struct {
	CarModel string `json:"CarModel"`
	CarMake  string `json:"CarMake"`
}

// User is a local account managed by the identity provider. PasswordHash is a
// bcrypt digest; plaintext passwords never leave the auth service.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
}
