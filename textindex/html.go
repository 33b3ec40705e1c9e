package textindex

import (
	"io"

	"golang.org/x/net/html"
)

// AddHTML extracts the textual content of an HTML fragment and counts it
// into the index. It does no interpretation of layout or styling, but
// collects the pure text of all text nodes, resembling the text produced by
//
//	document.body.innerText
//
// in JavaScript.
func (ix *Index) AddHTML(input io.Reader) error {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		ix.collectText(n)
	}
	return nil
}

func (ix *Index) collectText(n *html.Node) {
	if n.Type == html.TextNode {
		ix.Add(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		ix.collectText(c)
	}
}
