package domain

// File is a CSV file picked on the client side.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}
