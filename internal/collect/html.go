package collect

import (
	"os"

	"github.com/PuerkitoBio/goquery"
)

// extractHTML extracts visible text from an HTML document, dropping
// script/style content.
func extractHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Remove()

	if body := doc.Find("body"); body.Length() > 0 {
		return body.Text(), nil
	}
	return doc.Text(), nil
}

// readTextFile reads a plain text or markdown file as-is.
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
