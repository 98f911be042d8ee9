package gibberish

import "fmt"

// Report tallies a strategy's verdicts over labelled samples. Positives are
// gibberish samples.
type Report struct {
	TruePositive  int `json:"true_positive"`
	FalsePositive int `json:"false_positive"`
	TrueNegative  int `json:"true_negative"`
	FalseNegative int `json:"false_negative"`

	Misclassified []string `json:"misclassified,omitempty"`
}

func (r Report) Total() int {
	return r.TruePositive + r.FalsePositive + r.TrueNegative + r.FalseNegative
}

func (r Report) Accuracy() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(r.TruePositive+r.TrueNegative) / float64(total)
}

// Test runs s over good (English) and bad (gibberish) samples. The report is
// always returned; err is non-nil if either list is empty or any sample was
// misclassified.
func (d *Detector) Test(goodInput []string, badInput []string, s Strategy) (Report, error) {
	var r Report
	if len(goodInput) == 0 || len(badInput) == 0 {
		return r, fmt.Errorf("gibberish: empty test")
	}

	for _, txt := range goodInput {
		if d.IsGibberish(txt, s) {
			r.FalsePositive++
			r.Misclassified = append(r.Misclassified, txt)
		} else {
			r.TrueNegative++
		}
	}
	for _, txt := range badInput {
		if d.IsGibberish(txt, s) {
			r.TruePositive++
		} else {
			r.FalseNegative++
			r.Misclassified = append(r.Misclassified, txt)
		}
	}

	if len(r.Misclassified) > 0 {
		return r, fmt.Errorf("gibberish: test failed; %d good samples rejected, %d bad samples accepted",
			r.FalsePositive, r.FalseNegative)
	}
	return r, nil
}
