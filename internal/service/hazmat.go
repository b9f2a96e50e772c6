// internal/service/hazmat.go
// Keyword screening for hazardous-material indicators. This is a cheap
// first pass, not a substitute for the marketplace's own hazmat review.
package service

import (
	"strings"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/config"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/models"
)

type HazmatDetector struct {
	table config.HazmatTable
}

func NewHazmatDetector(table config.HazmatTable) *HazmatDetector {
	return &HazmatDetector{table: table}
}

// CheckHazmat scans title plus description against the keyword table.
// When both veto-level and flag-only keywords match, the veto-level match
// wins: safety-first tie-break.
func (d *HazmatDetector) CheckHazmat(title, description string) models.HazmatAssessment {
	text := normalizeText(title + " " + description)
	if text == "" {
		return models.HazmatAssessment{}
	}
	padded := " " + text + " "

	var flagged *config.HazmatKeyword
	for i := range d.table.Keywords {
		kw := &d.table.Keywords[i]
		needle := normalizeText(kw.Keyword)
		if needle == "" || !strings.Contains(padded, " "+needle+" ") {
			continue
		}
		if kw.Veto {
			return models.HazmatAssessment{
				Detected:       true,
				Category:       models.HazmatCategory(kw.Category),
				MatchedKeyword: kw.Keyword,
				IsVeto:         true,
			}
		}
		if flagged == nil {
			flagged = kw
		}
	}

	if flagged == nil {
		return models.HazmatAssessment{}
	}
	return models.HazmatAssessment{
		Detected:       true,
		Category:       models.HazmatCategory(flagged.Category),
		MatchedKeyword: flagged.Keyword,
	}
}
