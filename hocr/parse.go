package hocr

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Line-level hOCR classes. Tesseract emits headers, captions, and floating
// text as distinct classes that are structurally identical to ocr_line.
var lineClasses = map[string]bool{
	"ocr_line":      true,
	"ocr_header":    true,
	"ocr_caption":   true,
	"ocr_textfloat": true,
}

// Parse converts raw hOCR data into a Page. The first ocr_page element in
// the document becomes the result; recognition of a single image produces
// exactly one. It fails if the data contains no ocr_page element.
func Parse(data []byte) (*Page, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	node := findByClass(doc, func(class string) bool { return class == "ocr_page" })
	if node == nil {
		return nil, fmt.Errorf("no ocr_page element found in hOCR data")
	}

	page := &Page{}
	props := parseTitle(attr(node, "title"))
	if bbox, ok := parseBBox(props); ok {
		page.BBox = bbox
	}
	page.TextAngle = parseTextAngle(props)

	collectLines(node, page)

	return page, nil
}

// collectLines walks the page subtree gathering lines in document order,
// descending through grouping levels (careas, paragraphs). The first
// textangle property encountered below the page wins if the page itself
// carries none.
func collectLines(n *html.Node, page *Page) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}

		class := elementClass(c)
		if lineClasses[class] {
			page.Lines = append(page.Lines, parseLine(c))
			continue
		}

		if page.TextAngle == nil {
			if angle := parseTextAngle(parseTitle(attr(c, "title"))); angle != nil {
				page.TextAngle = angle
			}
		}
		collectLines(c, page)
	}
}

// parseLine extracts a line and its words from an hOCR line element.
func parseLine(n *html.Node) Line {
	props := parseTitle(attr(n, "title"))

	line := Line{}
	if bbox, ok := parseBBox(props); ok {
		line.BBox = bbox
	}
	if baseline, ok := props["baseline"]; ok {
		line.Baseline = strings.Join(baseline, " ")
	}

	var findWords func(*html.Node)
	findWords = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if elementClass(c) == "ocrx_word" {
				line.Words = append(line.Words, parseWord(c))
				continue
			}
			findWords(c)
		}
	}
	findWords(n)

	return line
}

// parseWord extracts a word from an ocrx_word element.
func parseWord(n *html.Node) Word {
	props := parseTitle(attr(n, "title"))

	word := Word{Text: textContent(n)}
	if bbox, ok := parseBBox(props); ok {
		word.BBox = bbox
	}
	if conf, ok := props["x_wconf"]; ok && len(conf) > 0 {
		if v, err := strconv.ParseFloat(conf[0], 64); err == nil {
			word.Confidence = v
		}
	}

	return word
}

// parseTitle breaks an hOCR title attribute into its properties.
// Example input: "bbox 100 200 300 400; x_wconf 95"
func parseTitle(title string) map[string][]string {
	props := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(part)
		if len(fields) > 0 {
			props[fields[0]] = fields[1:]
		}
	}
	return props
}

// parseBBox extracts the bbox property from parsed title properties.
func parseBBox(props map[string][]string) (BBox, bool) {
	values, ok := props["bbox"]
	if !ok || len(values) < 4 {
		return BBox{}, false
	}

	coords := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(values[i], 64)
		if err != nil {
			return BBox{}, false
		}
		coords[i] = v
	}

	return BBox{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}, true
}

// parseTextAngle extracts the optional textangle property. An unreadable
// value is treated the same as an absent one.
func parseTextAngle(props map[string][]string) *float64 {
	values, ok := props["textangle"]
	if !ok || len(values) == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil
	}
	return &v
}

// findByClass returns the first element in depth-first order whose class
// attribute contains a class accepted by match.
func findByClass(n *html.Node, match func(string) bool) *html.Node {
	if n.Type == html.ElementNode && match(elementClass(n)) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, match); found != nil {
			return found
		}
	}
	return nil
}

// elementClass returns the first class listed in the node's class attribute.
func elementClass(n *html.Node) string {
	fields := strings.Fields(attr(n, "class"))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// attr returns the value of the named attribute, or "" if not present.
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// textContent returns the concatenated text of a node's subtree, trimmed.
// Tesseract may nest formatting elements (strong, em) inside word spans.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
