package crossref

// Work is a single publication record in the registry's works response.
// Fields are optional on the wire; validation happens in transform.
type Work struct {
	DOI      string       `json:"DOI"`
	Title    []string     `json:"title"`
	Author   []WorkAuthor `json:"author"`
	Abstract string       `json:"abstract"`
	Created  WorkDate     `json:"created"`
	URL      string       `json:"URL"`
}

type WorkAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type WorkDate struct {
	DateTime string `json:"date-time"`
}

type worksResponse struct {
	Message struct {
		Items []Work `json:"items"`
	} `json:"message"`
}

type journalResponse struct {
	Message struct {
		Title string   `json:"title"`
		ISSN  []string `json:"ISSN"`
	} `json:"message"`
}
