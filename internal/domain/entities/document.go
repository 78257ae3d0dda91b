package entities

// Document is a retrieved reference snippet used to ground generated answers.
type Document struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Source string `json:"source"`
}
