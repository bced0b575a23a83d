package jph

// Post represents a single blog post as served by /posts.
type Post struct {
	ID     int    `json:"id"     yaml:"id"`
	UserID int    `json:"userId" yaml:"user_id"`
	Title  string `json:"title"  yaml:"title"`
	Body   string `json:"body"   yaml:"body"`
}

// User represents a community member as served by /users.
type User struct {
	ID       int     `json:"id"       yaml:"id"`
	Name     string  `json:"name"     yaml:"name"`
	Username string  `json:"username" yaml:"username"`
	Email    string  `json:"email"    yaml:"email"`
	Phone    string  `json:"phone"    yaml:"phone"`
	Website  string  `json:"website"  yaml:"website"`
	Company  Company `json:"company"  yaml:"company"`
	Address  Address `json:"address"  yaml:"address"`
}

// Company is the employer block embedded in a User.
type Company struct {
	Name        string `json:"name"                  yaml:"name"`
	CatchPhrase string `json:"catchPhrase,omitempty" yaml:"catch_phrase,omitempty"`
	BS          string `json:"bs,omitempty"          yaml:"bs,omitempty"`
}

// Address is the postal address embedded in a User.
type Address struct {
	Street  string `json:"street,omitempty" yaml:"street,omitempty"`
	Suite   string `json:"suite,omitempty"  yaml:"suite,omitempty"`
	City    string `json:"city"             yaml:"city"`
	Zipcode string `json:"zipcode"          yaml:"zipcode"`
	Geo     *Geo   `json:"geo,omitempty"    yaml:"geo,omitempty"`
}

// Geo holds the coordinates of an Address. The API sends them as strings.
type Geo struct {
	Lat string `json:"lat" yaml:"lat"`
	Lng string `json:"lng" yaml:"lng"`
}
