// Package report renders the diagnostic PDF summarizing one analysis.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/Anuj-165/SCAN2HEAL/internal/models"
	"github.com/google/uuid"
	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"
	"go.uber.org/zap"
)

// Renderer produces the fixed-layout diagnostic report. When fontPath names
// a TTF with Devanagari coverage it is embedded so Hindi text renders; with
// no font configured the built-in Helvetica covers Latin only.
//
// The layout is single page. Content beyond roughly 40 lines runs off the
// page; callers should not feed more than that.
type Renderer struct {
	font     *model.PdfFont
	fontBold *model.PdfFont
	logger   *zap.Logger
}

// NewRenderer loads the report fonts. fontPath names a TTF with Devanagari
// coverage; when it is empty or the file cannot be loaded the renderer falls
// back to the built-in Latin font, so reports still render (Latin-only) in
// environments that ship without the font asset.
func NewRenderer(fontPath string, logger *zap.Logger) (*Renderer, error) {
	fontBold, err := model.NewStandard14Font(model.HelveticaBoldName)
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	var font *model.PdfFont
	if fontPath != "" {
		font, err = model.NewCompositePdfFontFromTTFFile(fontPath)
		if err != nil {
			logger.Warn("Failed to load report font, falling back to Latin-only output",
				zap.String("font_path", fontPath),
				zap.Error(err),
			)
			font = nil
		}
	}
	if font == nil {
		font, err = model.NewStandard14Font(model.HelveticaName)
		if err != nil {
			return nil, fmt.Errorf("failed to load font: %w", err)
		}
	}

	return &Renderer{font: font, fontBold: fontBold, logger: logger}, nil
}

// Render writes the report PDF: title, disease, final decision, severity,
// threshold status, per-parameter threshold lines, bulleted recommendations
// and bulleted medicines with links.
func (r *Renderer) Render(diseaseName string, result models.AnalysisResult, medicines []models.Medicine, finalDecision string) ([]byte, error) {
	c := creator.New()
	c.SetPageMargins(50, 50, 50, 50)
	c.NewPage()

	reportID := uuid.New().String()

	if err := r.heading(c, "Scan2Heal - Diagnostic Report", 16); err != nil {
		return nil, err
	}
	if err := r.line(c, fmt.Sprintf("Report ID: %s", reportID)); err != nil {
		return nil, err
	}
	if err := r.line(c, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04"))); err != nil {
		return nil, err
	}
	if err := r.line(c, fmt.Sprintf("Disease: %s", diseaseName)); err != nil {
		return nil, err
	}
	if err := r.line(c, fmt.Sprintf("Final Decision: %s", finalDecision)); err != nil {
		return nil, err
	}

	if err := r.heading(c, "Severity:", 14); err != nil {
		return nil, err
	}
	if err := r.line(c, string(result.Severity)); err != nil {
		return nil, err
	}

	if err := r.heading(c, "Threshold Status:", 14); err != nil {
		return nil, err
	}
	if err := r.line(c, string(result.ThresholdStatus)); err != nil {
		return nil, err
	}

	if len(result.ThresholdDetails) > 0 {
		if err := r.heading(c, "Threshold Parameters:", 14); err != nil {
			return nil, err
		}
		for _, param := range sortedParams(result.ThresholdDetails) {
			detail := result.ThresholdDetails[param]
			value := "None"
			if detail.Value != nil {
				value = fmt.Sprintf("%g", *detail.Value)
			}
			if err := r.line(c, fmt.Sprintf("%s: %s -> %s", param, value, detail.Status)); err != nil {
				return nil, err
			}
		}
	}

	if len(result.Recommendations) > 0 {
		if err := r.heading(c, "Recommendations:", 14); err != nil {
			return nil, err
		}
		for _, rec := range result.Recommendations {
			if err := r.line(c, "- "+rec); err != nil {
				return nil, err
			}
		}
	}

	if len(medicines) > 0 {
		if err := r.heading(c, "Medicines:", 14); err != nil {
			return nil, err
		}
		for _, med := range medicines {
			if err := r.line(c, fmt.Sprintf("- %s - %s", med.Name, med.Link)); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	r.logger.Info("Rendered diagnostic report",
		zap.String("report_id", reportID),
		zap.String("disease", diseaseName),
		zap.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

func (r *Renderer) heading(c *creator.Creator, text string, size float64) error {
	p := c.NewParagraph(text)
	p.SetFont(r.fontBold)
	p.SetFontSize(size)
	p.SetMargins(0, 0, 10, 6)
	return c.Draw(p)
}

func (r *Renderer) line(c *creator.Creator, text string) error {
	p := c.NewParagraph(text)
	p.SetFont(r.font)
	p.SetFontSize(12)
	p.SetMargins(10, 0, 0, 3)
	return c.Draw(p)
}

func sortedParams(details map[string]models.ThresholdDetail) []string {
	params := make([]string, 0, len(details))
	for param := range details {
		params = append(params, param)
	}
	sort.Strings(params)
	return params
}
