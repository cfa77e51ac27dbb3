package content

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CardsFromHTML recovers card boundaries from a legacy monolithic HTML
// blob. Each <h4> heading starts a card: the heading text is the card
// title and the elements up to the next <h4> (or the end) are its
// content. A blob without headings becomes a single card holding the
// whole HTML. The walk operates on a parsed tree, not on string slices,
// so malformed markup degrades instead of silently dropping content.
func CardsFromHTML(rawHTML, fallbackTitle, parentID string) []Card {
	body := parseBody(rawHTML)
	if body == nil {
		return []Card{}
	}

	headings := childElements(body, atom.H4)
	if len(headings) == 0 {
		title := fallbackTitle
		if title == "" {
			title = "Service"
		}
		return []Card{{
			ID:      cardID(parentID, 1),
			Title:   title,
			Content: rawHTML,
		}}
	}

	cards := make([]Card, 0, len(headings))
	for i, h4 := range headings {
		title := strings.TrimSpace(textContent(h4))
		if title == "" {
			title = fmt.Sprintf("Item %d", i+1)
		}

		var sb strings.Builder
		for sib := nextElement(h4); sib != nil && sib.DataAtom != atom.H4; sib = nextElement(sib) {
			renderNode(&sb, sib)
		}

		content := sb.String()
		if content == "" {
			content = "<p>No content available</p>"
		}

		cards = append(cards, Card{
			ID:      cardID(parentID, i+1),
			Title:   title,
			Content: content,
		})
	}

	return cards
}

// DescriptionFromHTML extracts the service description from a legacy
// blob: the first paragraph's inner HTML, or, when the blob has no
// paragraphs, the text preceding the close of the first heading.
func DescriptionFromHTML(rawHTML string) string {
	body := parseBody(rawHTML)
	if body == nil {
		return ""
	}

	if p := firstElement(body, atom.P); p != nil {
		var sb strings.Builder
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			renderNode(&sb, c)
		}
		return sb.String()
	}

	var sb strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
		if c.DataAtom == atom.H4 {
			break
		}
	}

	return strings.TrimSpace(sb.String())
}

// parseBody parses an HTML fragment and returns the synthetic body node
// its content hangs from, or nil when parsing is impossible.
func parseBody(rawHTML string) *html.Node {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}
	return firstElement(root, atom.Body)
}

// childElements returns the direct element children of n matching a. The
// rich text editor emits flat markup, so headings are expected at the
// top level of the fragment.
func childElements(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			out = append(out, c)
		}
	}
	return out
}

func firstElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// nextElement skips text and comment nodes between siblings.
func nextElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

func renderNode(sb *strings.Builder, n *html.Node) {
	// Render errors only occur for exotic node types the parser never
	// produces here.
	_ = html.Render(sb, n)
}

func cardID(parentID string, n int) string {
	return fmt.Sprintf("%s-item-%d", parentID, n)
}
