package directory

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
)

// ParseEntries extracts hook entries from the directory page.
// The page groups hooks as list items under a heading per repository. The
// primary pass uses CSS selectors; if it yields nothing (markup drift), an
// XPath pass is tried before giving up.
func ParseEntries(content []byte) ([]Entry, error) {
	entries, cssErr := parseEntriesCSS(content)
	if cssErr == nil && len(entries) > 0 {
		return entries, nil
	}

	entries, xpathErr := parseEntriesXPath(content)
	if xpathErr == nil && len(entries) > 0 {
		return entries, nil
	}

	if cssErr != nil {
		return nil, cssErr
	}
	if xpathErr != nil {
		return nil, xpathErr
	}
	return nil, ErrNoEntries
}

// parseEntriesCSS extracts entries using CSS selectors.
// Each h2 names a repository; the list items until the next h2 carry a
// code element with the hook id, optionally followed by a description.
func parseEntriesCSS(content []byte) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse directory HTML: %w", err)
	}

	var entries []Entry
	doc.Find("h2").Each(func(_ int, heading *goquery.Selection) {
		repo := strings.TrimSpace(heading.Text())

		heading.NextUntil("h2").Find("li").Each(func(_ int, item *goquery.Selection) {
			code := item.Find("code").First()
			if code.Length() == 0 {
				return
			}

			hook := strings.TrimSpace(code.Text())
			if hook == "" {
				return
			}

			entries = append(entries, Entry{
				Repo:        repo,
				Hook:        hook,
				Description: descriptionAfter(item.Text(), hook),
			})
		})
	})

	return entries, nil
}

// parseEntriesXPath extracts entries using XPath expressions.
func parseEntriesXPath(content []byte) ([]Entry, error) {
	doc, err := htmlquery.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse directory HTML: %w", err)
	}

	items, err := htmlquery.QueryAll(doc, "//li[code]")
	if err != nil {
		return nil, fmt.Errorf("invalid directory XPath: %w", err)
	}

	var entries []Entry
	for _, item := range items {
		code, err := htmlquery.Query(item, "./code")
		if err != nil || code == nil {
			continue
		}

		hook := strings.TrimSpace(htmlquery.InnerText(code))
		if hook == "" {
			continue
		}

		var repo string
		if heading, err := htmlquery.Query(item, "preceding::h2[1]"); err == nil && heading != nil {
			repo = strings.TrimSpace(htmlquery.InnerText(heading))
		}

		entries = append(entries, Entry{
			Repo:        repo,
			Hook:        hook,
			Description: descriptionAfter(htmlquery.InnerText(item), hook),
		})
	}

	return entries, nil
}

// descriptionAfter strips the hook id and separator punctuation from an
// item's text, leaving the free-form description.
func descriptionAfter(itemText, hook string) string {
	text := strings.TrimSpace(itemText)
	text = strings.TrimPrefix(text, hook)
	return strings.TrimSpace(strings.TrimLeft(text, " \t-–—:"))
}
