// Package content converts between the stored content string of a
// services-type section and its normalized in-memory document.
//
// The stored field accumulated several shapes over the site's history:
// a canonical object with a services array, an older single-service
// object, an array of service entries that already carry cards, and an
// array of entries holding one monolithic HTML blob per service. Decode
// accepts all of them; Encode always writes the canonical shape, so any
// edit migrates old data forward.
package content

import (
	"encoding/json"
	"strings"

	"fmt"

	"github.com/microcosm-cc/bluemonday"
)

// sanitizer is applied to card and description HTML on encode. UGCPolicy
// keeps the tags the rich text editor emits and strips scripts and event
// handlers.
var sanitizer = bluemonday.UGCPolicy()

// Card is the smallest unit of a services section: a titled, optionally
// illustrated sub-block.
type Card struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Service is one service group: a title, an HTML description and its
// cards. Cards may be empty; a title-and-description-only group is valid.
type Service struct {
	// ID is a stable render key. It is synthesized from the owning
	// section's id on decode and never persisted, so repeated
	// decode/encode cycles stay byte-identical.
	ID          string
	Title       string
	Description string
	Cards       []Card
}

// Document is the decoded form of the whole stored field.
type Document struct {
	Title       string
	Description string
	Services    []Service
}

// wire shapes for shape detection. Fields are pointers or
// nilable slices so "key absent" is distinguishable from "key empty".
type wireObject struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Services    []wireServiceItem `json:"services"`
	Cards       []Card            `json:"cards"`
}

type wireServiceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Cards       []Card `json:"cards"`
	Content     string `json:"content"`
}

// encodedDocument is the canonical persisted shape. Description and
// cards are always present, even when empty: consumers assume the keys
// exist.
type encodedDocument struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Services    []encodedService `json:"services"`
}

type encodedService struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Cards       []Card `json:"cards"`
}

// Decode parses a stored content string into a Document. sectionID seeds
// synthesized ids and fallbackTitle fills titles legacy shapes lack.
//
// Decode never fails past this boundary: input that matches none of the
// known shapes (or is not JSON at all) yields a document with zero
// services, and the caller renders an empty state.
func Decode(raw, sectionID, fallbackTitle string) Document {
	doc := Document{Title: fallbackTitle, Services: []Service{}}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return doc
	}

	switch trimmed[0] {
	case '{':
		var obj wireObject
		if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
			return doc
		}
		return decodeObject(obj, sectionID, fallbackTitle)
	case '[':
		var items []wireServiceItem
		if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
			return doc
		}
		return decodeArray(items, sectionID, fallbackTitle)
	default:
		return doc
	}
}

// decodeObject handles the two object shapes: the canonical multi-service
// document and the legacy single-service object.
func decodeObject(obj wireObject, sectionID, fallbackTitle string) Document {
	doc := Document{Title: fallbackTitle, Services: []Service{}}

	if obj.Services != nil {
		if obj.Title != "" {
			doc.Title = obj.Title
		}
		doc.Description = obj.Description
		for i, svc := range obj.Services {
			cards := svc.Cards
			if cards == nil {
				cards = []Card{}
			}
			doc.Services = append(doc.Services, Service{
				ID:          serviceID(sectionID, i),
				Title:       svc.Title,
				Description: svc.Description,
				Cards:       cards,
			})
		}
		return doc
	}

	if obj.Title != "" && obj.Cards != nil {
		doc.Services = append(doc.Services, Service{
			ID:          sectionID,
			Title:       obj.Title,
			Description: obj.Description,
			Cards:       obj.Cards,
		})
		return doc
	}

	return doc
}

// decodeArray handles the two array shapes: entries that already carry
// cards and entries holding one HTML blob split on <h4> headings.
func decodeArray(items []wireServiceItem, sectionID, fallbackTitle string) Document {
	doc := Document{Title: fallbackTitle, Services: []Service{}}

	for i, item := range items {
		id := item.ID
		if id == "" {
			id = serviceID(sectionID, i)
		}

		if item.Cards != nil {
			doc.Services = append(doc.Services, Service{
				ID:          id,
				Title:       item.Title,
				Description: item.Description,
				Cards:       item.Cards,
			})
			continue
		}

		doc.Services = append(doc.Services, Service{
			ID:          id,
			Title:       item.Title,
			Description: DescriptionFromHTML(item.Content),
			Cards:       CardsFromHTML(item.Content, item.Title, id),
		})
	}

	return doc
}

// Encode serializes a document in the canonical shape. Card and
// description HTML is sanitized on the way out; every save therefore
// both upgrades the format and scrubs the markup.
func Encode(doc Document) (string, error) {
	out := encodedDocument{
		Title:       doc.Title,
		Description: sanitizer.Sanitize(doc.Description),
		Services:    []encodedService{},
	}

	for _, svc := range doc.Services {
		cards := make([]Card, 0, len(svc.Cards))
		for _, c := range svc.Cards {
			c.Content = sanitizer.Sanitize(c.Content)
			cards = append(cards, c)
		}
		out.Services = append(out.Services, encodedService{
			Title:       svc.Title,
			Description: sanitizer.Sanitize(svc.Description),
			Cards:       cards,
		})
	}

	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("content: encode: %w", err)
	}

	return string(b), nil
}

// Normalize rewrites a stored content string into the canonical shape
// when it is decodable. Input that yields no services is returned
// unchanged so unparsed data is never destroyed on save.
func Normalize(raw, sectionID, fallbackTitle string) (string, bool) {
	doc := Decode(raw, sectionID, fallbackTitle)
	if len(doc.Services) == 0 {
		return raw, false
	}

	encoded, err := Encode(doc)
	if err != nil {
		return raw, false
	}

	return encoded, true
}

func serviceID(sectionID string, index int) string {
	return fmt.Sprintf("service-%s-%d", sectionID, index)
}
