package view

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// plainText renders an inline markup fragment as a single line of text and
// collects its absolute http(s) anchors.
func plainText(fragment string) (string, []Link) {
	if !strings.ContainsAny(fragment, "<&") {
		return strings.Join(strings.Fields(fragment), " "), nil
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " "), nil
	}

	var buf strings.Builder
	var links []Link

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "br":
				buf.WriteString(" ")
			case "a":
				if href := anchorHref(n); href != "" {
					links = append(links, Link{Label: nodeText(n), Href: href})
				}
			}
		}

		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.Join(strings.Fields(buf.String()), " "), links
}

// anchorHref returns the anchor target when it is an absolute http(s) URL
func anchorHref(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key != "href" {
			continue
		}
		parsed, err := url.Parse(strings.TrimSpace(attr.Val))
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return ""
		}
		return parsed.String()
	}
	return ""
}

func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}
