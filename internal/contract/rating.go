package contract

// RatingBand is one row of the fixed rating scale used to grade the
// weight-adjusted performance score.
type RatingBand struct {
	Label       string `json:"label"`
	Range       string `json:"range"`
	Min         int    `json:"min"`
	Description string `json:"description"`
}

var RatingScale = []RatingBand{
	{Label: "Excellent", Range: "90-100%", Min: 90, Description: "Consistently exceeds all expectations and requirements"},
	{Label: "Very Good", Range: "80-89%", Min: 80, Description: "Frequently exceeds expectations and requirements"},
	{Label: "Good", Range: "70-79%", Min: 70, Description: "Consistently meets expectations and requirements"},
	{Label: "Fair", Range: "60-69%", Min: 60, Description: "Meets some expectations but needs improvement"},
	{Label: "Poor", Range: "Below 60%", Min: 0, Description: "Does not meet expectations, requires significant improvement"},
}

// RatingFor bands a 0-100 score into its scale label.
func RatingFor(score int) string {
	for _, band := range RatingScale {
		if score >= band.Min {
			return band.Label
		}
	}
	return RatingScale[len(RatingScale)-1].Label
}
