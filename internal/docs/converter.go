package docs

import (
	"fmt"
	"strings"

	docs "google.golang.org/api/docs/v1"
)

// namedStyleHeadings maps Docs named paragraph styles to Markdown heading
// levels.
var namedStyleHeadings = map[string]int{
	"HEADING_1": 1,
	"HEADING_2": 2,
	"HEADING_3": 3,
	"HEADING_4": 4,
	"HEADING_5": 5,
	"HEADING_6": 6,
}

// DocumentToMarkdown renders a document body as Markdown. Both legacy
// single-body documents and tabbed documents are supported.
func DocumentToMarkdown(doc *docs.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("document is nil")
	}

	var md strings.Builder

	if doc.Title != "" {
		fmt.Fprintf(&md, "# %s\n\n", doc.Title)
	}

	if len(doc.Tabs) > 0 {
		renderTabsMarkdown(&md, doc.Tabs, 2)
	} else if doc.Body != nil {
		renderBodyMarkdown(&md, doc.Body.Content)
	}

	return md.String(), nil
}

// DocumentToPlainText extracts the raw text of a document body, including
// all tabs.
func DocumentToPlainText(doc *docs.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("document is nil")
	}

	var text strings.Builder

	if len(doc.Tabs) > 0 {
		extractTabsText(&text, doc.Tabs)
	} else if doc.Body != nil {
		extractBodyText(&text, doc.Body.Content)
	}

	return text.String(), nil
}

func renderTabsMarkdown(md *strings.Builder, tabs []*docs.Tab, headingLevel int) {
	for i, tab := range tabs {
		title := tabTitle(tab, i)
		fmt.Fprintf(md, "%s %s\n\n", strings.Repeat("#", headingLevel), title)

		if tab.DocumentTab != nil && tab.DocumentTab.Body != nil {
			renderBodyMarkdown(md, tab.DocumentTab.Body.Content)
		}
		if len(tab.ChildTabs) > 0 {
			renderTabsMarkdown(md, tab.ChildTabs, headingLevel+1)
		}
	}
}

func renderBodyMarkdown(md *strings.Builder, content []*docs.StructuralElement) {
	for _, element := range content {
		switch {
		case element.Paragraph != nil:
			renderParagraphMarkdown(md, element.Paragraph)
		case element.Table != nil:
			renderTableMarkdown(md, element.Table)
		case element.SectionBreak != nil:
			md.WriteString("\n---\n\n")
		}
	}
}

func renderParagraphMarkdown(md *strings.Builder, para *docs.Paragraph) {
	if para == nil {
		return
	}

	headingLevel := 0
	if para.ParagraphStyle != nil {
		headingLevel = namedStyleHeadings[para.ParagraphStyle.NamedStyleType]
	}

	if headingLevel > 0 {
		md.WriteString(strings.Repeat("#", headingLevel))
		md.WriteString(" ")
	} else if para.Bullet != nil {
		md.WriteString("- ")
	}

	for _, elem := range para.Elements {
		if elem.TextRun != nil {
			renderTextRunMarkdown(md, elem.TextRun)
		}
	}

	md.WriteString("\n")
	if headingLevel > 0 || para.Bullet == nil {
		md.WriteString("\n")
	}
}

func renderTextRunMarkdown(md *strings.Builder, run *docs.TextRun) {
	content := run.Content
	if content == "" {
		return
	}

	style := run.TextStyle
	if style == nil {
		md.WriteString(content)
		return
	}

	if style.Link != nil && style.Link.Url != "" {
		fmt.Fprintf(md, "[%s](%s)", strings.TrimSpace(content), style.Link.Url)
		return
	}

	switch {
	case style.Bold && style.Italic:
		fmt.Fprintf(md, "***%s***", content)
	case style.Bold:
		fmt.Fprintf(md, "**%s**", content)
	case style.Italic:
		fmt.Fprintf(md, "*%s*", content)
	default:
		md.WriteString(content)
	}
}

func renderTableMarkdown(md *strings.Builder, table *docs.Table) {
	for rowIndex, row := range table.TableRows {
		md.WriteString("|")
		for _, cell := range row.TableCells {
			var cellText strings.Builder
			extractBodyText(&cellText, cell.Content)
			text := strings.ReplaceAll(strings.TrimSpace(cellText.String()), "\n", " ")
			fmt.Fprintf(md, " %s |", text)
		}
		md.WriteString("\n")

		if rowIndex == 0 {
			md.WriteString("|")
			for range row.TableCells {
				md.WriteString(" --- |")
			}
			md.WriteString("\n")
		}
	}
	md.WriteString("\n")
}

func extractTabsText(text *strings.Builder, tabs []*docs.Tab) {
	for i, tab := range tabs {
		fmt.Fprintf(text, "=== %s ===\n\n", tabTitle(tab, i))

		if tab.DocumentTab != nil && tab.DocumentTab.Body != nil {
			extractBodyText(text, tab.DocumentTab.Body.Content)
		}
		if len(tab.ChildTabs) > 0 {
			extractTabsText(text, tab.ChildTabs)
		}
		text.WriteString("\n")
	}
}

func extractBodyText(text *strings.Builder, content []*docs.StructuralElement) {
	for _, element := range content {
		switch {
		case element.Paragraph != nil:
			for _, elem := range element.Paragraph.Elements {
				if elem.TextRun != nil {
					text.WriteString(elem.TextRun.Content)
				}
			}
		case element.Table != nil:
			for _, row := range element.Table.TableRows {
				for _, cell := range row.TableCells {
					extractBodyText(text, cell.Content)
					text.WriteString("\t")
				}
				text.WriteString("\n")
			}
		}
	}
}

func tabTitle(tab *docs.Tab, index int) string {
	if tab.TabProperties != nil && tab.TabProperties.Title != "" {
		return tab.TabProperties.Title
	}
	return fmt.Sprintf("Tab %d", index+1)
}
