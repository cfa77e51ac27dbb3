// Package adminforms converts the bilingual admin editing forms to and
// from per-language section content rows. The admin UI edits both
// languages in a single form; storage keeps one row per language.
//
// Hebrew is the authoritative language for this site: when an english
// field is left empty the hebrew value is published in its place, so the
// public page never renders a hole.
package adminforms

import (
	"fmt"

	"marketing_site/internal/content"
	"marketing_site/internal/domain/models"
)

// LocalizedText is one field edited in both languages.
type LocalizedText struct {
	EN string `json:"en"`
	HE string `json:"he"`
}

// Resolve returns the value for a language, falling back to hebrew.
func (t LocalizedText) Resolve(language string) string {
	if language == models.LanguageEN {
		if t.EN != "" {
			return t.EN
		}
		return t.HE
	}
	return t.HE
}

type HeroForm struct {
	Title          LocalizedText `json:"title"`
	Subtitle       LocalizedText `json:"subtitle"`
	BottomSubtitle LocalizedText `json:"bottomSubtitle"`
	ImageURL       string        `json:"imageUrl"`
}

type AboutForm struct {
	Title    LocalizedText `json:"title"`
	Content  LocalizedText `json:"content"`
	ImageURL string        `json:"imageUrl"`
}

type HeaderForm struct {
	Title    LocalizedText `json:"title"`
	Subtitle LocalizedText `json:"subtitle"`
	LogoURL  string        `json:"logoUrl"`
}

type ServiceCardForm struct {
	Title   LocalizedText `json:"title"`
	Content LocalizedText `json:"content"`
	// One image serves both languages; cards keep visual parity across
	// the language switch.
	ImageURL string `json:"imageUrl"`
}

type ServicesForm struct {
	Title       LocalizedText     `json:"title"`
	Description LocalizedText     `json:"description"`
	Cards       []ServiceCardForm `json:"cards"`
}

var languages = []string{models.LanguageEN, models.LanguageHE}

// HeroContents expands the form into one content row per language.
func HeroContents(sectionID string, form HeroForm) []models.SectionContent {
	var rows []models.SectionContent
	for _, lang := range languages {
		rows = append(rows, models.SectionContent{
			Language:       lang,
			Title:          form.Title.Resolve(lang),
			Subtitle:       form.Subtitle.Resolve(lang),
			BottomSubtitle: form.BottomSubtitle.Resolve(lang),
			ImageURL:       form.ImageURL,
		})
	}
	return rows
}

// HeroFromContents rebuilds the form from stored rows. Only fields that
// differ between languages are reported as distinct; a value identical in
// both rows is treated as a hebrew-only entry so a round trip does not
// fabricate english text.
func HeroFromContents(rows []models.SectionContent) HeroForm {
	en, he := splitByLanguage(rows)

	return HeroForm{
		Title:          localized(en.Title, he.Title),
		Subtitle:       localized(en.Subtitle, he.Subtitle),
		BottomSubtitle: localized(en.BottomSubtitle, he.BottomSubtitle),
		ImageURL:       firstNonEmpty(he.ImageURL, en.ImageURL),
	}
}

func AboutContents(sectionID string, form AboutForm) []models.SectionContent {
	var rows []models.SectionContent
	for _, lang := range languages {
		rows = append(rows, models.SectionContent{
			Language: lang,
			Title:    form.Title.Resolve(lang),
			Content:  form.Content.Resolve(lang),
			ImageURL: form.ImageURL,
		})
	}
	return rows
}

func AboutFromContents(rows []models.SectionContent) AboutForm {
	en, he := splitByLanguage(rows)

	return AboutForm{
		Title:    localized(en.Title, he.Title),
		Content:  localized(en.Content, he.Content),
		ImageURL: firstNonEmpty(he.ImageURL, en.ImageURL),
	}
}

func HeaderContents(sectionID string, form HeaderForm) []models.SectionContent {
	var rows []models.SectionContent
	for _, lang := range languages {
		rows = append(rows, models.SectionContent{
			Language: lang,
			Title:    form.Title.Resolve(lang),
			Subtitle: form.Subtitle.Resolve(lang),
			ImageURL: form.LogoURL,
		})
	}
	return rows
}

func HeaderFromContents(rows []models.SectionContent) HeaderForm {
	en, he := splitByLanguage(rows)

	return HeaderForm{
		Title:    localized(en.Title, he.Title),
		Subtitle: localized(en.Subtitle, he.Subtitle),
		LogoURL:  firstNonEmpty(he.ImageURL, en.ImageURL),
	}
}

// ServicesContents encodes the form into one canonical services JSON
// document per language. Card image URLs are shared across languages.
func ServicesContents(sectionID string, form ServicesForm) ([]models.SectionContent, error) {
	var rows []models.SectionContent
	for _, lang := range languages {
		doc := content.Document{
			Title:       form.Title.Resolve(lang),
			Description: form.Description.Resolve(lang),
		}

		service := content.Service{
			ID:          fmt.Sprintf("service-%s-0", sectionID),
			Title:       form.Title.Resolve(lang),
			Description: form.Description.Resolve(lang),
			Cards:       []content.Card{},
		}
		for i, card := range form.Cards {
			service.Cards = append(service.Cards, content.Card{
				ID:       fmt.Sprintf("%s-item-%d", service.ID, i+1),
				Title:    card.Title.Resolve(lang),
				Content:  card.Content.Resolve(lang),
				ImageURL: card.ImageURL,
			})
		}
		doc.Services = []content.Service{service}

		encoded, err := content.Encode(doc)
		if err != nil {
			return nil, fmt.Errorf("encode services content: %w", err)
		}

		rows = append(rows, models.SectionContent{
			Language: lang,
			Title:    form.Title.Resolve(lang),
			Content:  encoded,
		})
	}
	return rows, nil
}

// ServicesFromContents merges both language rows back into one form.
// Cards are aligned by position; the card count follows the hebrew row.
func ServicesFromContents(sectionID string, rows []models.SectionContent) ServicesForm {
	en, he := splitByLanguage(rows)

	enDoc := content.Decode(en.Content, sectionID, en.Title)
	heDoc := content.Decode(he.Content, sectionID, he.Title)

	form := ServicesForm{
		Title:       localized(firstServiceTitle(enDoc), firstServiceTitle(heDoc)),
		Description: localized(firstServiceDescription(enDoc), firstServiceDescription(heDoc)),
	}

	heCards := firstServiceCards(heDoc)
	enCards := firstServiceCards(enDoc)
	for i, heCard := range heCards {
		card := ServiceCardForm{
			Title:    LocalizedText{HE: heCard.Title},
			Content:  LocalizedText{HE: heCard.Content},
			ImageURL: heCard.ImageURL,
		}
		if i < len(enCards) {
			card.Title = localized(enCards[i].Title, heCard.Title)
			card.Content = localized(enCards[i].Content, heCard.Content)
			if card.ImageURL == "" {
				card.ImageURL = enCards[i].ImageURL
			}
		}
		form.Cards = append(form.Cards, card)
	}

	return form
}

func splitByLanguage(rows []models.SectionContent) (en, he models.SectionContent) {
	for _, row := range rows {
		switch row.Language {
		case models.LanguageEN:
			en = row
		case models.LanguageHE:
			he = row
		}
	}
	return en, he
}

// localized collapses a fallback copy: when english equals hebrew the
// value is assumed to have been a fallback, not a translation.
func localized(en, he string) LocalizedText {
	if en == he {
		return LocalizedText{HE: he}
	}
	return LocalizedText{EN: en, HE: he}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstServiceTitle(doc content.Document) string {
	if len(doc.Services) > 0 {
		return doc.Services[0].Title
	}
	return doc.Title
}

func firstServiceDescription(doc content.Document) string {
	if len(doc.Services) > 0 {
		return doc.Services[0].Description
	}
	return doc.Description
}

func firstServiceCards(doc content.Document) []content.Card {
	if len(doc.Services) > 0 {
		return doc.Services[0].Cards
	}
	return nil
}
