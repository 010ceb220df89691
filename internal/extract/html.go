package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockAtoms are elements that end a visual line in the rendered panel.
// Text separated by these boundaries must stay on separate lines so the
// windowed extraction pass can see the widget's label/value layout.
var blockAtoms = map[atom.Atom]bool{
	atom.Address: true,
	atom.Article: true,
	atom.Div:     true,
	atom.H1:      true,
	atom.H2:      true,
	atom.H3:      true,
	atom.H4:      true,
	atom.H5:      true,
	atom.H6:      true,
	atom.Li:      true,
	atom.Ol:      true,
	atom.P:       true,
	atom.Section: true,
	atom.Table:   true,
	atom.Tr:      true,
	atom.Ul:      true,
}

// PanelText flattens a snapshot of the panel's HTML into its visible text,
// inserting line breaks at block-element boundaries and <br> tags and
// skipping script/style content.
//
// Design decision: We derive the panel snapshot from HTML rather than
// relying on the automation engine's innerText, because innerText line
// breaking varies between engine versions while this flattening is
// deterministic. Snapshots are compared by exact string equality, so
// determinism matters more than pixel-faithful layout.
func PanelText(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, node := range doc.Nodes {
		flatten(node, &b)
	}

	// Trim each line and drop blank-line runs while preserving order.
	raw := strings.Split(b.String(), "\n")
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// flatten walks the node tree writing text content and line breaks.
func flatten(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript:
			return
		case atom.Br:
			b.WriteByte('\n')
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatten(c, b)
	}

	if n.Type == html.ElementNode && blockAtoms[n.DataAtom] {
		b.WriteByte('\n')
	}
}
