package adf

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Default host fragments matched against link hrefs.
const (
	DefaultChatHost   = "lmwn.slack.com"
	DefaultDesignHost = "figma.com"
	DefaultQueryHost  = "lmwn-redash.linecorp.com/queries/"
)

var (
	designPathRe = regexp.MustCompile(`/(?:design|file)/[^/]+/([^/?]+)`)
	queryIDRe    = regexp.MustCompile(`queries/(\d+)`)
	htmlEscaper  = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
)

// Renderer converts ADF documents to HTML, diverting chat and design-tool
// links into side channels instead of rendering them inline.
type Renderer struct {
	chatHost   string
	designHost string
	queryHost  string
}

// Options overrides the host fragments a Renderer matches against.
// Empty fields fall back to the defaults.
type Options struct {
	ChatHost   string
	DesignHost string
	QueryHost  string
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		chatHost:   opts.ChatHost,
		designHost: opts.DesignHost,
		queryHost:  opts.QueryHost,
	}
	if r.chatHost == "" {
		r.chatHost = DefaultChatHost
	}
	if r.designHost == "" {
		r.designHost = DefaultDesignHost
	}
	if r.queryHost == "" {
		r.queryHost = DefaultQueryHost
	}
	return r
}

// Render walks the document and produces HTML plus the extracted links.
// A nil or empty document renders to an empty result.
func (r *Renderer) Render(doc *Document) Result {
	res := Result{DesignLinks: []Link{}}
	if doc == nil || len(doc.Content) == 0 {
		return res
	}

	var b strings.Builder
	for _, node := range doc.Content {
		b.WriteString(r.renderNode(node, &res))
	}
	res.HTML = strings.ReplaceAll(b.String(), "<p></p>", "")
	return res
}

func (r *Renderer) renderNode(node Node, res *Result) string {
	var children strings.Builder
	for _, child := range node.Content {
		children.WriteString(r.renderNode(child, res))
	}

	switch node.Type {
	case "doc":
		return children.String()
	case "paragraph":
		if strings.TrimSpace(children.String()) == "" {
			return ""
		}
		return "<p>" + children.String() + "</p>"
	case "inlineCard":
		return r.renderInlineCard(node)
	case "text":
		return r.renderText(node, res)
	default:
		// Unknown node types render through their children.
		return children.String()
	}
}

func (r *Renderer) renderInlineCard(node Node) string {
	cardURL := EscapeHTML(node.Attrs.URL)
	docType, icon := "Linked Document", "🔗"
	switch {
	case strings.Contains(cardURL, "docs.google.com/document"):
		docType, icon = "Google Doc", "📄"
	case strings.Contains(cardURL, "docs.google.com/spreadsheets"):
		docType, icon = "Google Sheet", "📊"
	}
	return fmt.Sprintf(
		`<a href="%s" target="_blank" rel="noopener noreferrer" class="text-blue-600 hover:underline inline-flex items-center gap-1">%s %s</a>`,
		cardURL, icon, docType,
	)
}

func (r *Renderer) renderText(node Node, res *Result) string {
	text := EscapeHTML(node.Text)

	for _, mark := range node.Marks {
		if mark.Type != "link" {
			continue
		}
		href := EscapeHTML(mark.Attrs.Href)

		if strings.Contains(href, r.chatHost) {
			// Only the first chat link per document is surfaced.
			if res.ChatLink == "" {
				res.ChatLink = href
			}
			return ""
		}

		if strings.Contains(href, r.designHost) {
			label := text
			if m := designPathRe.FindStringSubmatch(href); m != nil {
				if decoded, err := url.PathUnescape(m[1]); err == nil {
					label = strings.NewReplacer("-", " ", "_", " ").Replace(decoded)
				}
			}
			if label == "" {
				label = fmt.Sprintf("Design File #%d", len(res.DesignLinks)+1)
			}
			res.DesignLinks = append(res.DesignLinks, Link{Href: href, Label: label})
			return ""
		}

		if strings.Contains(href, r.queryHost) {
			queryID := "unknown"
			if m := queryIDRe.FindStringSubmatch(href); m != nil {
				queryID = m[1]
			}
			return fmt.Sprintf(
				`<a href="%s" target="_blank" rel="noopener noreferrer" class="text-blue-600 hover:underline">redash #%s</a>`,
				href, queryID,
			)
		}

		return fmt.Sprintf(
			`<a href="%s" target="_blank" rel="noopener noreferrer" class="text-blue-600 hover:underline">%s</a>`,
			href, text,
		)
	}

	return text
}

// EscapeHTML escapes the five HTML-unsafe characters.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
