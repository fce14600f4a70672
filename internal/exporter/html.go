package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renders the catalog body; the table extension is required for
// the pipe tables emitted below.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// htmlHeader and htmlFooter wrap the rendered catalog in a minimal
// standalone page.
const htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Story Concepts</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// exportHTML renders the catalog as markdown and converts it with
// goldmark, producing a self-contained page.
func exportHTML(w io.Writer, doc document) error {
	md := renderMarkdown(doc)

	if _, err := io.WriteString(w, htmlHeader); err != nil {
		return err
	}
	if err := markdown.Convert([]byte(md), w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := io.WriteString(w, htmlFooter)
	return err
}

func renderMarkdown(doc document) string {
	var b strings.Builder
	b.WriteString("# Story Concepts\n\n")

	if len(doc.Batches) > 0 {
		b.WriteString("## Concept Batches\n\n")
		b.WriteString("| Batch | Date | Genre | Tropes | Count | Status | Location |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
		for _, row := range doc.Batches {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s | %s |\n",
				cell(row.BatchID), cell(row.DateGenerated), cell(row.Genre),
				cell(row.Tropes), row.Count, cell(row.Status), cell(row.Location))
		}
		b.WriteString("\n")
	}

	if len(doc.Stories) > 0 {
		b.WriteString("## Stories in Development\n\n")
		b.WriteString("| Title | Genre | Tropes | Status | Created | Target |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
		for _, row := range doc.Stories {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				cell(row.Title), cell(row.Genre), cell(row.Tropes),
				cell(row.Status), cell(row.DateCreated), cell(row.TargetLength))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// cell escapes pipes so user text cannot break table rows.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
