package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalInput = `{"title":"Services","description":"<p>What we offer</p>","services":[{"title":"Therapy","description":"<p>One on one</p>","cards":[{"id":"c1","title":"Intake","content":"<p>First meeting</p>"},{"id":"c2","title":"Follow up","content":"<p>Ongoing</p>","imageUrl":"/uploads/f.png"}]},{"title":"Workshops","description":"","cards":[]}]}`

func TestDecode_CanonicalFormat(t *testing.T) {
	doc := Decode(canonicalInput, "sec1", "Services")

	require.Len(t, doc.Services, 2)
	assert.Equal(t, "Services", doc.Title)
	assert.Equal(t, "<p>What we offer</p>", doc.Description)

	first := doc.Services[0]
	assert.Equal(t, "service-sec1-0", first.ID)
	assert.Equal(t, "Therapy", first.Title)
	require.Len(t, first.Cards, 2)
	assert.Equal(t, "Intake", first.Cards[0].Title)
	assert.Equal(t, "/uploads/f.png", first.Cards[1].ImageURL)

	// A service with zero cards is valid, and the decoded slice is
	// empty rather than nil.
	second := doc.Services[1]
	assert.Equal(t, "service-sec1-1", second.ID)
	assert.NotNil(t, second.Cards)
	assert.Empty(t, second.Cards)
}

func TestDecode_LegacySingleServiceObject(t *testing.T) {
	raw := `{"title":"Therapy","description":"<p>One on one</p>","cards":[{"id":"c1","title":"Intake","content":"<p>First meeting</p>"}]}`

	doc := Decode(raw, "sec1", "Services")

	require.Len(t, doc.Services, 1)
	assert.Equal(t, "sec1", doc.Services[0].ID)
	assert.Equal(t, "Therapy", doc.Services[0].Title)
	assert.Len(t, doc.Services[0].Cards, 1)
}

func TestDecode_LegacyArrayWithCards(t *testing.T) {
	raw := `[{"id":"svc-a","title":"Therapy","description":"d","cards":[{"id":"c1","title":"A","content":"<p>a</p>"}]},{"id":"svc-b","title":"Groups","description":"","cards":[]}]`

	doc := Decode(raw, "sec1", "Services")

	require.Len(t, doc.Services, 2)
	assert.Equal(t, "svc-a", doc.Services[0].ID)
	assert.Len(t, doc.Services[0].Cards, 1)
	assert.Empty(t, doc.Services[1].Cards)
}

func TestDecode_LegacyArrayWithHTMLContent(t *testing.T) {
	raw := `[{"id":"svc-a","title":"Therapy","content":"<p>Intro</p><h4>Title A</h4><p>Body A</p><h4>Title B</h4><p>Body B</p>"}]`

	doc := Decode(raw, "sec1", "Services")

	require.Len(t, doc.Services, 1)
	svc := doc.Services[0]
	assert.Equal(t, "Therapy", svc.Title)
	assert.Equal(t, "Intro", svc.Description)

	require.Len(t, svc.Cards, 2)
	assert.Equal(t, "Title A", svc.Cards[0].Title)
	assert.Equal(t, "<p>Body A</p>", svc.Cards[0].Content)
	assert.Equal(t, "svc-a-item-1", svc.Cards[0].ID)
	assert.Equal(t, "Title B", svc.Cards[1].Title)
	assert.Equal(t, "<p>Body B</p>", svc.Cards[1].Content)
}

func TestDecode_UnparsedInputYieldsEmptyDocument(t *testing.T) {
	for name, raw := range map[string]string{
		"empty":          "",
		"prose":          "just some text about services",
		"html":           "<p>not json</p>",
		"broken json":    `{"services": [`,
		"unknown object": `{"foo": 1}`,
		"number":         "42",
		"null services":  `{"title":"x","description":"y"}`,
	} {
		t.Run(name, func(t *testing.T) {
			doc := Decode(raw, "sec1", "Services")
			assert.NotNil(t, doc.Services)
			assert.Empty(t, doc.Services)
			assert.Equal(t, "Services", doc.Title)
		})
	}
}

func TestEncode_AlwaysEmitsCanonicalShape(t *testing.T) {
	doc := Document{
		Title: "Services",
		Services: []Service{
			{ID: "sec1", Title: "Therapy", Cards: nil},
		},
	}

	encoded, err := Encode(doc)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(encoded), &out))

	// description and cards are present even when empty.
	assert.Contains(t, out, "description")
	services := out["services"].([]any)
	require.Len(t, services, 1)
	svc := services[0].(map[string]any)
	assert.Equal(t, "", svc["description"])
	assert.NotNil(t, svc["cards"])
}

func TestRoundTrip_CanonicalIsStable(t *testing.T) {
	doc := Decode(canonicalInput, "sec1", "Services")
	first, err := Encode(doc)
	require.NoError(t, err)

	second, err := Encode(Decode(first, "sec1", "Services"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRoundTrip_LegacyInputsConverge(t *testing.T) {
	inputs := []string{
		`{"title":"Therapy","description":"<p>d</p>","cards":[{"id":"c1","title":"A","content":"<p>a</p>"}]}`,
		`[{"id":"svc-a","title":"Therapy","description":"d","cards":[{"id":"c1","title":"A","content":"<p>a</p>"}]}]`,
		`[{"id":"svc-a","title":"Therapy","content":"<h4>Title A</h4><p>Body A</p>"}]`,
	}

	for _, raw := range inputs {
		first, err := Encode(Decode(raw, "sec1", "Services"))
		require.NoError(t, err)

		second, err := Encode(Decode(first, "sec1", "Services"))
		require.NoError(t, err)

		// Migrate-on-write is forward only: once canonical, every
		// further cycle is byte-identical.
		assert.Equal(t, first, second, "input %s", raw)
		assert.True(t, json.Valid([]byte(first)))
	}
}

func TestEncode_SanitizesMarkup(t *testing.T) {
	doc := Document{
		Title: "Services",
		Services: []Service{{
			ID:    "sec1",
			Title: "Therapy",
			Cards: []Card{{
				ID:      "c1",
				Title:   "A",
				Content: `<p>ok</p><script>alert(1)</script>`,
			}},
		}},
	}

	encoded, err := Encode(doc)
	require.NoError(t, err)
	assert.NotContains(t, encoded, "script")
	assert.Contains(t, encoded, "<p>ok</p>")
}

func TestNormalize(t *testing.T) {
	t.Run("legacy input is rewritten", func(t *testing.T) {
		raw := `{"title":"Therapy","description":"","cards":[]}`
		out, changed := Normalize(raw, "sec1", "Services")
		assert.True(t, changed)
		assert.Contains(t, out, `"services"`)
	})

	t.Run("unparsed input survives untouched", func(t *testing.T) {
		raw := "<p>hand written html, not a services payload</p>"
		out, changed := Normalize(raw, "sec1", "Services")
		assert.False(t, changed)
		assert.Equal(t, raw, out)
	})
}
