package filtering

import (
	"bytes"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serializes the given fragments one after the other.
func RenderHTML(w io.Writer, nodes ...*html.Node) error {
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// RenderString is RenderHTML into a string.
func RenderString(nodes ...*html.Node) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, nodes...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// element builds an element node. attrs are key/value pairs; pairs with an empty
// value are skipped so optional attributes can be passed unconditionally.
func element(a atom.Atom, attrs []string, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] == "" {
			continue
		}
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

func attrs(kv ...string) []string {
	return kv
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// optionGroup is the container every filter kind renders into.
func optionGroup(heading string, children ...*html.Node) *html.Node {
	all := append([]*html.Node{element(atom.H4, nil, text(heading))}, children...)
	return element(atom.Div, attrs("class", "option-group"), all...)
}

// accelLabel returns the label content with the first occurrence of the
// accelerator highlighted. Without a match the accelerator is appended in
// parentheses so the key stays discoverable.
func accelLabel(label string, accel rune) []*html.Node {
	if accel == 0 {
		return []*html.Node{text(label)}
	}
	idx := strings.IndexFunc(label, func(r rune) bool {
		return unicode.ToLower(r) == unicode.ToLower(accel)
	})
	if idx < 0 {
		return []*html.Node{
			text(label + " ("),
			element(atom.Kbd, nil, text(string(accel))),
			text(")"),
		}
	}
	_, size := utf8.DecodeRuneInString(label[idx:])
	nodes := make([]*html.Node, 0, 3)
	if idx > 0 {
		nodes = append(nodes, text(label[:idx]))
	}
	nodes = append(nodes, element(atom.Kbd, nil, text(label[idx:idx+size])))
	if rest := label[idx+size:]; rest != "" {
		nodes = append(nodes, text(rest))
	}
	return nodes
}

// accessKey returns the access key attribute value for an accelerator.
func accessKey(accel rune) string {
	if accel == 0 {
		return ""
	}
	return string(unicode.ToLower(accel))
}
