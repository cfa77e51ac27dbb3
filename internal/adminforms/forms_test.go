package adminforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing_site/internal/domain/models"
)

func TestHeroContents_TranslatedForm(t *testing.T) {
	form := HeroForm{
		Title:    LocalizedText{EN: "Welcome", HE: "ברוכים הבאים"},
		Subtitle: LocalizedText{EN: "We build", HE: "אנחנו בונים"},
		ImageURL: "/uploads/hero.jpg",
	}

	rows := HeroContents("sec-1", form)
	require.Len(t, rows, 2)

	en, he := splitByLanguage(rows)
	assert.Equal(t, "Welcome", en.Title)
	assert.Equal(t, "ברוכים הבאים", he.Title)
	assert.Equal(t, "/uploads/hero.jpg", en.ImageURL)
	assert.Equal(t, "/uploads/hero.jpg", he.ImageURL)
}

func TestHeroContents_EnglishFallsBackToHebrew(t *testing.T) {
	form := HeroForm{
		Title:          LocalizedText{HE: "כותרת"},
		BottomSubtitle: LocalizedText{EN: "only english", HE: "רק עברית"},
	}

	en, he := splitByLanguage(HeroContents("sec-1", form))

	// No english title was entered, so the public english page shows the
	// hebrew one rather than an empty heading.
	assert.Equal(t, "כותרת", en.Title)
	assert.Equal(t, "כותרת", he.Title)
	assert.Equal(t, "only english", en.BottomSubtitle)
	assert.Equal(t, "רק עברית", he.BottomSubtitle)
}

func TestHeroRoundTrip(t *testing.T) {
	form := HeroForm{
		Title:    LocalizedText{EN: "Welcome", HE: "ברוכים הבאים"},
		Subtitle: LocalizedText{HE: "רק עברית"},
		ImageURL: "/uploads/hero.jpg",
	}

	got := HeroFromContents(HeroContents("sec-1", form))

	assert.Equal(t, form.Title, got.Title)
	// The english subtitle row carried the hebrew fallback; the rebuilt
	// form must not present it as a translation.
	assert.Equal(t, LocalizedText{HE: "רק עברית"}, got.Subtitle)
	assert.Equal(t, "/uploads/hero.jpg", got.ImageURL)
}

func TestAboutRoundTrip(t *testing.T) {
	form := AboutForm{
		Title:    LocalizedText{EN: "About us", HE: "עלינו"},
		Content:  LocalizedText{EN: "<p>Our story.</p>", HE: "<p>הסיפור שלנו.</p>"},
		ImageURL: "/uploads/about.png",
	}

	got := AboutFromContents(AboutContents("sec-2", form))
	assert.Equal(t, form, got)
}

func TestHeaderRoundTrip(t *testing.T) {
	form := HeaderForm{
		Title:   LocalizedText{EN: "Acme", HE: "אקמי"},
		LogoURL: "/uploads/logo.svg",
	}

	rows := HeaderContents("sec-3", form)
	en, he := splitByLanguage(rows)
	assert.Equal(t, "/uploads/logo.svg", en.ImageURL)
	assert.Equal(t, "/uploads/logo.svg", he.ImageURL)

	assert.Equal(t, form, HeaderFromContents(rows))
}

func TestServicesContents_EncodesCanonicalPerLanguage(t *testing.T) {
	form := ServicesForm{
		Title:       LocalizedText{EN: "Our services", HE: "השירותים שלנו"},
		Description: LocalizedText{HE: "<p>תיאור</p>"},
		Cards: []ServiceCardForm{
			{
				Title:    LocalizedText{EN: "Consulting", HE: "ייעוץ"},
				Content:  LocalizedText{EN: "<p>We advise.</p>", HE: "<p>אנחנו מייעצים.</p>"},
				ImageURL: "/uploads/card.jpg",
			},
		},
	}

	rows, err := ServicesContents("sec-4", form)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	en, he := splitByLanguage(rows)
	assert.Equal(t, "Our services", en.Title)
	assert.Equal(t, "השירותים שלנו", he.Title)

	assert.Contains(t, en.Content, `"services":[`)
	assert.Contains(t, en.Content, "Consulting")
	assert.Contains(t, he.Content, "ייעוץ")
	// The english description was empty; the hebrew one serves both rows.
	assert.Contains(t, en.Content, "תיאור")
}

func TestServicesRoundTrip_CardImageParity(t *testing.T) {
	form := ServicesForm{
		Title: LocalizedText{EN: "Our services", HE: "השירותים שלנו"},
		Cards: []ServiceCardForm{
			{
				Title:    LocalizedText{EN: "Consulting", HE: "ייעוץ"},
				Content:  LocalizedText{EN: "<p>We advise.</p>", HE: "<p>אנחנו מייעצים.</p>"},
				ImageURL: "/uploads/card.jpg",
			},
			{
				Title:   LocalizedText{HE: "פיתוח"},
				Content: LocalizedText{HE: "<p>פיתוח אתרים.</p>"},
			},
		},
	}

	rows, err := ServicesContents("sec-4", form)
	require.NoError(t, err)

	got := ServicesFromContents("sec-4", rows)

	require.Len(t, got.Cards, 2)
	assert.Equal(t, form.Cards[0].Title, got.Cards[0].Title)
	assert.Equal(t, form.Cards[0].Content, got.Cards[0].Content)
	// Both language rows point at the same card image.
	assert.Equal(t, "/uploads/card.jpg", got.Cards[0].ImageURL)

	assert.Equal(t, LocalizedText{HE: "פיתוח"}, got.Cards[1].Title)
	assert.Equal(t, LocalizedText{HE: "<p>פיתוח אתרים.</p>"}, got.Cards[1].Content)
}

func TestServicesFromContents_HebrewOnlyRow(t *testing.T) {
	rows := []models.SectionContent{
		{
			Language: models.LanguageHE,
			Title:    "שירותים",
			Content:  `{"title":"שירותים","description":"","services":[{"title":"שירותים","description":"","cards":[{"title":"א","content":"<p>אחד</p>"}]}]}`,
		},
	}

	got := ServicesFromContents("sec-5", rows)

	assert.Equal(t, LocalizedText{HE: "שירותים"}, got.Title)
	require.Len(t, got.Cards, 1)
	assert.Equal(t, LocalizedText{HE: "א"}, got.Cards[0].Title)
}
