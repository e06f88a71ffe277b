package adf

// Document is the root of an Atlassian Document Format tree.
type Document struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
	Content []Node `json:"content"`
}

// Node is a single ADF node. Unknown types are rendered through their children.
type Node struct {
	Type    string    `json:"type"`
	Text    string    `json:"text,omitempty"`
	Content []Node    `json:"content,omitempty"`
	Attrs   NodeAttrs `json:"attrs,omitempty"`
	Marks   []Mark    `json:"marks,omitempty"`
}

// NodeAttrs carries the node attributes we care about.
type NodeAttrs struct {
	URL string `json:"url,omitempty"`
}

// Mark annotates a text run, e.g. a link.
type Mark struct {
	Type  string    `json:"type"`
	Attrs MarkAttrs `json:"attrs,omitempty"`
}

// MarkAttrs carries the mark attributes we care about.
type MarkAttrs struct {
	Href string `json:"href,omitempty"`
}

// Link is an extracted outbound link with a display label.
type Link struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// Result is the output of rendering one document.
type Result struct {
	HTML        string `json:"html"`
	ChatLink    string `json:"chat_link,omitempty"`
	DesignLinks []Link `json:"design_links"`
}
