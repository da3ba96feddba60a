package ocr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/ejberdin-coachiq/coachiq-backend-sub000/model"
)

// ParseHOCR parses hOCR HTML, the positional output format Tesseract
// emits, into the normalized OCR record. Page geometry comes from the
// ocr_page element, line geometry from ocr_line bounding boxes, and
// line confidence from the mean of the member ocrx_word confidences.
// It works without the ocr build tag so saved hOCR can be replayed.
func ParseHOCR(data string) (*model.OCRDocument, error) {
	root, err := html.Parse(strings.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid hOCR markup: %w", err)
	}

	doc := &model.OCRDocument{}
	var texts []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			class := attr(n, "class")
			title := attr(n, "title")
			switch {
			case hasClass(class, "ocr_page"):
				page := model.OCRPage{PageNumber: len(doc.Pages) + 1}
				if x1, y1, x2, y2, ok := parseBBox(title); ok {
					page.Width = x2 - x1
					page.Height = y2 - y1
				}
				doc.Pages = append(doc.Pages, page)
			case hasClass(class, "ocr_line") || hasClass(class, "ocr_header") ||
				hasClass(class, "ocr_caption") || hasClass(class, "ocr_textfloat"):
				if len(doc.Pages) == 0 {
					doc.Pages = append(doc.Pages, model.OCRPage{PageNumber: 1})
				}
				if line, ok := parseLine(n, title); ok {
					page := &doc.Pages[len(doc.Pages)-1]
					page.Lines = append(page.Lines, line)
					texts = append(texts, line.Text)
				}
				return // words already consumed
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	doc.Text = strings.Join(texts, "\n")
	return doc, nil
}

// parseLine builds one OCR line from an ocr_line element: word texts
// joined left to right, bounding box from the line title, confidence
// averaged over the word x_wconf values when present.
func parseLine(n *html.Node, title string) (model.OCRLine, bool) {
	var words []string
	confSum := 0.0
	confCount := 0

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(attr(n, "class"), "ocrx_word") {
			if text := strings.TrimSpace(textContent(n)); text != "" {
				words = append(words, text)
			}
			if conf, ok := parseWordConfidence(attr(n, "title")); ok {
				confSum += conf
				confCount++
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	text := strings.Join(words, " ")
	if text == "" {
		text = strings.TrimSpace(textContent(n))
	}
	if text == "" {
		return model.OCRLine{}, false
	}

	line := model.OCRLine{Text: text}
	if x1, y1, x2, y2, ok := parseBBox(title); ok {
		quad := model.NewQuadFromRect(x1, y1, x2-x1, y2-y1)
		line.BBox = &quad
	}
	if confCount > 0 {
		line.Confidence = model.Float64(confSum / float64(confCount) / 100)
	}
	return line, true
}

// parseBBox extracts "bbox x1 y1 x2 y2" from an hOCR title attribute.
func parseBBox(title string) (x1, y1, x2, y2 float64, ok bool) {
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}
		coords := make([]float64, 4)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return 0, 0, 0, 0, false
			}
			coords[i] = v
		}
		return coords[0], coords[1], coords[2], coords[3], true
	}
	return 0, 0, 0, 0, false
}

// parseWordConfidence extracts "x_wconf NN" from an hOCR title
// attribute. The value is Tesseract's 0-100 word confidence.
func parseWordConfidence(title string) (float64, bool) {
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 2 && fields[0] == "x_wconf" {
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// hasClass reports whether the space-separated class list contains the
// given class.
func hasClass(classList, class string) bool {
	for _, c := range strings.Fields(classList) {
		if c == class {
			return true
		}
	}
	return false
}

// textContent concatenates the text nodes under n.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
