package export

import (
	"context"
	"fmt"
	"html/template"
	"strings"
)

// Service renders letters to downloadable documents
type Service struct{}

// NewService creates a new export service
func NewService() *Service {
	return &Service{}
}

// Export generates an export in the requested format
func (s *Service) Export(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.BodyHTML) == "" {
		return nil, ErrContentUnavailable
	}

	data := TemplateData{
		Title:      req.Title,
		Date:       req.Date,
		Salutation: req.Salutation,
		BodyHTML:   template.HTML(req.BodyHTML),
		Signature:  req.Signature,
		Address:    req.Address,
		Recipients: req.Recipients,
	}

	html, err := RenderLetterHTML(data)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	title := req.Title
	if strings.TrimSpace(title) == "" {
		title = req.LetterID
	}

	switch req.Format {
	case FormatPDF:
		return exportPDF(ctx, html, title)
	case FormatDOCX:
		return exportDOCX(html, title)
	default:
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}
}
