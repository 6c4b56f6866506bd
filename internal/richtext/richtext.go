// Package richtext turns CMS rich-text documents and Markdown snippets into
// sanitised HTML.
package richtext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Node types emitted by the CMS rich-text editor.
const (
	NodeDocument       = "document"
	NodeParagraph      = "paragraph"
	NodeText           = "text"
	NodeHyperlink      = "hyperlink"
	NodeUnorderedList  = "unordered-list"
	NodeOrderedList    = "ordered-list"
	NodeListItem       = "list-item"
	NodeBlockquote     = "blockquote"
	NodeHorizontalRule = "hr"
)

// Mark is an inline text decoration.
type Mark struct {
	Type string `json:"type"`
}

// Node is a rich-text tree node. A field stored as a plain string decodes
// into a Node holding that string as Markdown.
type Node struct {
	NodeType string         `json:"nodeType"`
	Value    string         `json:"value,omitempty"`
	Marks    []Mark         `json:"marks,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
	Content  []Node         `json:"content,omitempty"`

	Markdown string `json:"-"`
}

// UnmarshalJSON accepts either a rich-text object or a Markdown string.
func (n *Node) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Node{NodeType: NodeDocument, Markdown: s}
		return nil
	}
	type plain Node
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*n = Node(p)
	return nil
}

// MarshalJSON writes Markdown-backed nodes back out as strings.
func (n Node) MarshalJSON() ([]byte, error) {
	if n.Markdown != "" {
		return json.Marshal(n.Markdown)
	}
	type plain Node
	return json.Marshal(plain(n))
}

// Parse converts a decoded JSON value into a Node.
func Parse(v any) (*Node, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("richtext: encode: %w", err)
	}
	var n Node
	if err := json.Unmarshal(b, &n); err != nil {
		return nil, fmt.Errorf("richtext: decode: %w", err)
	}
	if n.NodeType == "" {
		return nil, fmt.Errorf("richtext: missing nodeType")
	}
	return &n, nil
}

// PlainText returns the concatenated text content of the tree.
func (n *Node) PlainText() string {
	if n == nil {
		return ""
	}
	if n.Markdown != "" {
		return n.Markdown
	}
	var sb strings.Builder
	n.writeText(&sb)
	return strings.TrimSpace(sb.String())
}

func (n *Node) writeText(sb *strings.Builder) {
	if n.NodeType == NodeText {
		sb.WriteString(n.Value)
		return
	}
	for i := range n.Content {
		n.Content[i].writeText(sb)
	}
	if n.NodeType == NodeParagraph || n.NodeType == NodeListItem || n.NodeType == NodeBlockquote ||
		strings.HasPrefix(n.NodeType, "heading-") {
		sb.WriteString(" ")
	}
}

var (
	policy = bluemonday.UGCPolicy()
	md     = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
)

// HTML renders the tree as sanitised HTML.
func (n *Node) HTML() template.HTML {
	if n == nil {
		return ""
	}
	if n.Markdown != "" {
		return Markdown(n.Markdown)
	}
	var sb strings.Builder
	n.writeHTML(&sb)
	return template.HTML(policy.Sanitize(sb.String()))
}

func (n *Node) writeHTML(sb *strings.Builder) {
	switch n.NodeType {
	case NodeText:
		sb.WriteString(wrapMarks(html.EscapeString(n.Value), n.Marks))
		return
	case NodeHorizontalRule:
		sb.WriteString("<hr>")
		return
	}
	open, close := tagsFor(n)
	sb.WriteString(open)
	for i := range n.Content {
		n.Content[i].writeHTML(sb)
	}
	sb.WriteString(close)
}

func tagsFor(n *Node) (string, string) {
	switch n.NodeType {
	case NodeParagraph:
		return "<p>", "</p>"
	case NodeUnorderedList:
		return "<ul>", "</ul>"
	case NodeOrderedList:
		return "<ol>", "</ol>"
	case NodeListItem:
		return "<li>", "</li>"
	case NodeBlockquote:
		return "<blockquote>", "</blockquote>"
	case NodeHyperlink:
		uri, _ := n.Data["uri"].(string)
		return `<a href="` + html.EscapeString(uri) + `">`, "</a>"
	}
	if strings.HasPrefix(n.NodeType, "heading-") && len(n.NodeType) == len("heading-1") {
		level := n.NodeType[len("heading-"):]
		if level >= "1" && level <= "6" {
			return "<h" + level + ">", "</h" + level + ">"
		}
	}
	return "", ""
}

func wrapMarks(s string, marks []Mark) string {
	for _, m := range marks {
		switch m.Type {
		case "bold":
			s = "<strong>" + s + "</strong>"
		case "italic":
			s = "<em>" + s + "</em>"
		case "underline":
			s = "<u>" + s + "</u>"
		case "code":
			s = "<code>" + s + "</code>"
		}
	}
	return s
}

// Markdown renders a Markdown snippet as sanitised HTML.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(html.EscapeString(src))
	}
	return template.HTML(policy.Sanitize(buf.String()))
}
