package docs

import (
	"strings"
	"testing"

	docs "google.golang.org/api/docs/v1"
)

func paragraph(text string, style string) *docs.StructuralElement {
	para := &docs.Paragraph{
		Elements: []*docs.ParagraphElement{
			{TextRun: &docs.TextRun{Content: text}},
		},
	}
	if style != "" {
		para.ParagraphStyle = &docs.ParagraphStyle{NamedStyleType: style}
	}
	return &docs.StructuralElement{Paragraph: para}
}

func TestDocumentToMarkdownNil(t *testing.T) {
	if _, err := DocumentToMarkdown(nil); err == nil {
		t.Error("expected error for nil document")
	}
	if _, err := DocumentToPlainText(nil); err == nil {
		t.Error("expected error for nil document")
	}
}

func TestDocumentToMarkdownTitleAndBody(t *testing.T) {
	doc := &docs.Document{
		Title: "Test Document",
		Body: &docs.Body{
			Content: []*docs.StructuralElement{
				paragraph("Heading\n", "HEADING_1"),
				paragraph("Plain text.\n", ""),
			},
		},
	}

	md, err := DocumentToMarkdown(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(md, "# Test Document\n\n") {
		t.Errorf("expected title as H1, got: %q", md)
	}
	if !strings.Contains(md, "# Heading\n") {
		t.Errorf("expected heading rendered, got: %q", md)
	}
	if !strings.Contains(md, "Plain text.") {
		t.Errorf("expected body text, got: %q", md)
	}
}

func TestDocumentToMarkdownFormatting(t *testing.T) {
	doc := &docs.Document{
		Body: &docs.Body{
			Content: []*docs.StructuralElement{
				{
					Paragraph: &docs.Paragraph{
						Elements: []*docs.ParagraphElement{
							{TextRun: &docs.TextRun{Content: "bold", TextStyle: &docs.TextStyle{Bold: true}}},
							{TextRun: &docs.TextRun{Content: " and "}},
							{TextRun: &docs.TextRun{Content: "italic", TextStyle: &docs.TextStyle{Italic: true}}},
						},
					},
				},
			},
		},
	}

	md, err := DocumentToMarkdown(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(md, "**bold**") {
		t.Errorf("expected bold markup, got: %q", md)
	}
	if !strings.Contains(md, "*italic*") {
		t.Errorf("expected italic markup, got: %q", md)
	}
}

func TestDocumentToMarkdownLink(t *testing.T) {
	doc := &docs.Document{
		Body: &docs.Body{
			Content: []*docs.StructuralElement{
				{
					Paragraph: &docs.Paragraph{
						Elements: []*docs.ParagraphElement{
							{TextRun: &docs.TextRun{
								Content:   "example",
								TextStyle: &docs.TextStyle{Link: &docs.Link{Url: "https://example.com"}},
							}},
						},
					},
				},
			},
		},
	}

	md, err := DocumentToMarkdown(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(md, "[example](https://example.com)") {
		t.Errorf("expected markdown link, got: %q", md)
	}
}

func TestDocumentToMarkdownTable(t *testing.T) {
	doc := &docs.Document{
		Body: &docs.Body{
			Content: []*docs.StructuralElement{
				{
					Table: &docs.Table{
						TableRows: []*docs.TableRow{
							{TableCells: []*docs.TableCell{
								{Content: []*docs.StructuralElement{paragraph("Name", "")}},
								{Content: []*docs.StructuralElement{paragraph("Value", "")}},
							}},
							{TableCells: []*docs.TableCell{
								{Content: []*docs.StructuralElement{paragraph("a", "")}},
								{Content: []*docs.StructuralElement{paragraph("1", "")}},
							}},
						},
					},
				},
			},
		},
	}

	md, err := DocumentToMarkdown(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(md, "| Name | Value |") {
		t.Errorf("expected header row, got: %q", md)
	}
	if !strings.Contains(md, "| --- | --- |") {
		t.Errorf("expected separator row, got: %q", md)
	}
	if !strings.Contains(md, "| a | 1 |") {
		t.Errorf("expected data row, got: %q", md)
	}
}

func TestDocumentToPlainTextTabs(t *testing.T) {
	doc := &docs.Document{
		Tabs: []*docs.Tab{
			{
				TabProperties: &docs.TabProperties{Title: "Notes"},
				DocumentTab: &docs.DocumentTab{
					Body: &docs.Body{
						Content: []*docs.StructuralElement{paragraph("tab content\n", "")},
					},
				},
			},
			{
				DocumentTab: &docs.DocumentTab{
					Body: &docs.Body{
						Content: []*docs.StructuralElement{paragraph("second tab\n", "")},
					},
				},
			},
		},
	}

	text, err := DocumentToPlainText(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(text, "=== Notes ===") {
		t.Errorf("expected named tab marker, got: %q", text)
	}
	if !strings.Contains(text, "=== Tab 2 ===") {
		t.Errorf("expected fallback tab title, got: %q", text)
	}
	if !strings.Contains(text, "tab content") || !strings.Contains(text, "second tab") {
		t.Errorf("expected content from both tabs, got: %q", text)
	}
}
