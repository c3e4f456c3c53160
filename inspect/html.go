package inspect

import (
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML outputs tree as an HTML table with one row per layer. Every cell spans
// the leaf columns below its node. Cells have CSS class "padding" if they
// cover padding leaves only, pending operators are wrapped in a span of class
// "pending".
func ToHTML(tree Layered, w io.Writer) error {
	table := element(atom.Table, html.Attribute{Key: "class", Val: "adsl-tree"})
	s := shapeOf(tree)
	for d := 0; s.cap > 0 && d <= s.height; d++ {
		row := element(atom.Tr)
		from, to := s.layer(d)
		for i := from; i < to; i++ {
			attrs := []html.Attribute{{Key: "colspan", Val: strconv.Itoa(s.span(d))}}
			if s.isPadding(i, d) {
				attrs = append(attrs, html.Attribute{Key: "class", Val: "padding"})
			}
			cell := element(atom.Td, attrs...)
			value, pending := tree.Label(i)
			if value != "" {
				cell.AppendChild(text(value))
			}
			if pending != "" {
				span := element(atom.Span, html.Attribute{Key: "class", Val: "pending"})
				span.AppendChild(text(pending))
				cell.AppendChild(span)
			}
			row.AppendChild(cell)
		}
		table.AppendChild(row)
	}
	if err := html.Render(w, table); err != nil {
		tracer().Errorf("inspect: rendering HTML: %v", err)
		return err
	}
	return nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
