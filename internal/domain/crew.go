package domain

type Crew struct {
	ID        int64
	FirstName string
	LastName  string
	ImageURL  string
}

func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}
