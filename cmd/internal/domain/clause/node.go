package clause

import "strings"

type NodeKind int

const (
	// NodeParagraph is a full-width block of prose.
	NodeParagraph NodeKind = iota
	// NodeItem is an indented sub-paragraph, usually lettered.
	NodeItem
)

type Node struct {
	Kind NodeKind
	Text string
}

// Section is the output of one clause template: a heading and its body, in
// the order they must be laid out.
type Section struct {
	Title string
	Nodes []Node
}

// String renders the section as plain text, title first and one blank line
// between nodes. Items are indented by four spaces.
func (s Section) String() string {
	var b strings.Builder
	if s.Title != "" {
		b.WriteString(s.Title)
		b.WriteString("\n\n")
	}
	for i, n := range s.Nodes {
		if i > 0 {
			b.WriteString("\n")
			if n.Kind == NodeParagraph || s.Nodes[i-1].Kind == NodeParagraph {
				b.WriteString("\n")
			}
		}
		if n.Kind == NodeItem {
			b.WriteString("    ")
		}
		b.WriteString(n.Text)
	}
	return b.String()
}

func para(text string) Node {
	return Node{Kind: NodeParagraph, Text: text}
}

// items letters every non-blank text as "a)", "b)", ... skipping blanks, so
// optional entries can be passed as "" and simply disappear.
func items(texts ...string) []Node {
	nodes := make([]Node, 0, len(texts))
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		letter := string(rune('a' + len(nodes)%26))
		nodes = append(nodes, Node{Kind: NodeItem, Text: letter + ") " + t})
	}
	return nodes
}

// section joins paragraphs and node groups into one Section.
func section(title string, parts ...any) Section {
	s := Section{Title: title}
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				s.Nodes = append(s.Nodes, para(v))
			}
		case Node:
			s.Nodes = append(s.Nodes, v)
		case []Node:
			s.Nodes = append(s.Nodes, v...)
		}
	}
	return s
}
