package newsprint

import "strings"

// Validity reports the outcome of the body validity check along with the
// rule that decided it.
type Validity struct {
	Valid  bool
	Reason string
}

// Validity reasons, in the order the rules are evaluated.
const (
	ReasonArticleWordCount = "verified for article type and word count"
	ReasonNoMediaNoText    = "no media and no text"
	ReasonBadTitle         = "bad title"
	ReasonWordCount        = "word count too low"
	ReasonSentenceCount    = "sentence count too low"
	ReasonNoHTML           = "no html"
	ReasonDefault          = "verified by default"
)

// CheckBody decides whether the parsed article body is a genuine article.
// Returns EPRECONDITION if the article has not been parsed.
func (a *Article) CheckBody() (Validity, error) {
	if err := a.RequireParsed(); err != nil {
		return Validity{}, err
	}

	words := len(strings.Split(a.Text, " "))
	sentences := len(strings.Split(a.Text, "."))

	switch {
	case a.MetaType == "article" && words > a.Config.MinWordCount:
		return Validity{Valid: true, Reason: ReasonArticleWordCount}, nil
	case !a.IsMediaNews() && a.Text == "":
		return Validity{Reason: ReasonNoMediaNoText}, nil
	case len(strings.Split(a.Title, " ")) < 2:
		return Validity{Reason: ReasonBadTitle}, nil
	case words < a.Config.MinWordCount:
		return Validity{Reason: ReasonWordCount}, nil
	case sentences < a.Config.MinSentCount:
		return Validity{Reason: ReasonSentenceCount}, nil
	case a.HTML == "":
		return Validity{Reason: ReasonNoHTML}, nil
	}
	return Validity{Valid: true, Reason: ReasonDefault}, nil
}

// IsValidBody reports whether the parsed article body is a genuine article.
func (a *Article) IsValidBody() (bool, error) {
	v, err := a.CheckBody()
	return v.Valid, err
}
