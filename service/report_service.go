package service

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// ReportService renders tabular report documents to HTML for the print
// pipeline
type ReportService struct{}

// NewReportService creates a new ReportService
func NewReportService() *ReportService {
	return &ReportService{}
}

// RenderHTML renders a table document with the shared report template.
// Identical documents always produce identical markup.
func (s *ReportService) RenderHTML(doc TableDocument) (string, error) {
	templatePath := filepath.Join("templates", "report_table.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	templateData := struct {
		TableDocument
		EmptyMessage string
	}{
		TableDocument: doc,
		EmptyMessage:  EmptyResultMessage,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
