// Package whatlanggo detects the language of article text with
// abadojack/whatlanggo.
package whatlanggo

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/fwojciec/newsprint"
)

// Ensure Detector implements newsprint.LanguageDetector at compile time.
var _ newsprint.LanguageDetector = (*Detector)(nil)

// Detector identifies the language of a text from its trigram profile.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectLanguage returns the ISO 639-1 code of text. The result is only
// reported when the detection is reliable.
func (d *Detector) DetectLanguage(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "", false
	}

	lang := info.Lang.Iso6391()
	return lang, lang != ""
}
