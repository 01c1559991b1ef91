package pipeline

import "github.com/fwojciec/newsprint"

// CheckBody runs the body validity rules on a and logs the rule that decided.
func (p *Processor) CheckBody(a *newsprint.Article) (newsprint.Validity, error) {
	v, err := a.CheckBody()
	if err != nil {
		return v, err
	}
	p.logger().Debug("validity", "url", a.URL, "valid", v.Valid, "reason", v.Reason)
	return v, nil
}
