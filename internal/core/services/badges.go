package services

import (
	"fmt"

	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
)

// languageColors maps well-known language names to shield badge colors.
// Closed finite mapping with an explicit fallback.
var languageColors = map[string]string{
	"JavaScript": "F7DF1E",
	"TypeScript": "3178C6",
	"Python":     "3776AB",
	"Java":       "ED8B00",
	"Go":         "00ADD8",
	"Rust":       "000000",
	"C++":        "00599C",
	"C#":         "239120",
	"PHP":        "777BB4",
	"Ruby":       "CC342D",
}

// defaultLanguageColor is used for languages outside the lookup table.
const defaultLanguageColor = "2196F3"

// languageColor returns the badge color for a language.
func languageColor(language string) string {
	if color, ok := languageColors[language]; ok {
		return color
	}
	return defaultLanguageColor
}

// buildShields returns the badge expressions for a profile in the fixed
// order: language, stars, forks, license, CI, then framework badges in
// detection order.
func buildShields(p *domain.RepositoryProfile) []string {
	var shields []string

	if p.PrimaryLanguage != "" {
		shields = append(shields, fmt.Sprintf(
			"![%s](https://img.shields.io/badge/language-%s-%s?style=flat-square)",
			p.PrimaryLanguage, p.PrimaryLanguage, languageColor(p.PrimaryLanguage)))
	}

	shields = append(shields, fmt.Sprintf(
		"![GitHub stars](https://img.shields.io/github/stars/%s/%s?style=flat-square)",
		p.OwnerLogin, p.Name))
	shields = append(shields, fmt.Sprintf(
		"![GitHub forks](https://img.shields.io/github/forks/%s/%s?style=flat-square)",
		p.OwnerLogin, p.Name))

	if p.HasLicense {
		shields = append(shields, fmt.Sprintf(
			"![License](https://img.shields.io/github/license/%s/%s?style=flat-square)",
			p.OwnerLogin, p.Name))
	}

	if p.HasCapability(domain.CapabilityCICD) {
		shields = append(shields, fmt.Sprintf(
			"![Build Status](https://img.shields.io/github/actions/workflow/status/%s/%s/ci.yml?style=flat-square)",
			p.OwnerLogin, p.Name))
	}

	// Framework badges follow capability detection order.
	if p.HasCapability(domain.CapabilityReactApp) {
		shields = append(shields,
			"![React](https://img.shields.io/badge/React-18+-61DAFB?style=flat-square&logo=react)")
	}
	if p.HasCapability(domain.CapabilityNextFramework) {
		shields = append(shields,
			"![Next.js](https://img.shields.io/badge/Next.js-13+-000000?style=flat-square&logo=nextdotjs)")
	}
	if p.HasCapability(domain.CapabilityTypeScript) {
		shields = append(shields,
			"![TypeScript](https://img.shields.io/badge/TypeScript-4+-3178C6?style=flat-square&logo=typescript)")
	}

	return shields
}
