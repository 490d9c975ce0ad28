package zotero

import "encoding/json"

// ParentKey is a parent collection key, empty for top-level collections.
// The API encodes top-level as JSON false.
type ParentKey string

func (p *ParentKey) UnmarshalJSON(b []byte) error {
	if string(b) == "false" {
		*p = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*p = ParentKey(s)
	return nil
}

func (p ParentKey) MarshalJSON() ([]byte, error) {
	if p == "" {
		return []byte("false"), nil
	}
	return json.Marshal(string(p))
}

type Collection struct {
	Key  string         `json:"key"`
	Data CollectionData `json:"data"`
}

type CollectionData struct {
	Key              string    `json:"key"`
	Name             string    `json:"name"`
	ParentCollection ParentKey `json:"parentCollection"`
}

// NewCollection is the creation payload for one collection.
type NewCollection struct {
	Name             string    `json:"name"`
	ParentCollection ParentKey `json:"parentCollection"`
}

type Creator struct {
	CreatorType string `json:"creatorType"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

// Item is the creation payload for one journal-article item.
type Item struct {
	ItemType         string    `json:"itemType"`
	Title            string    `json:"title"`
	DOI              string    `json:"DOI"`
	URL              string    `json:"url"`
	AbstractNote     string    `json:"abstractNote"`
	PublicationTitle string    `json:"publicationTitle"`
	Date             string    `json:"date"`
	ISSN             string    `json:"ISSN"`
	Creators         []Creator `json:"creators"`
	Collections      []string  `json:"collections"`
}

// writeResponse is the per-object success/failure map returned by the
// creation endpoints.
type writeResponse struct {
	Successful map[string]Collection      `json:"successful"`
	Failed     map[string]json.RawMessage `json:"failed"`
}
