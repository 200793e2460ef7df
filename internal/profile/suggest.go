package profile

import "fmt"

// Suggestion pairs an imputation strategy with its rationale for one
// column.
type Suggestion struct {
	Strategy  string
	Rationale string
}

var monetaryColumns = map[string]bool{
	"Income": true, "Loan_Balance": true, "Credit_Score": true,
}

var categoricalColumns = map[string]bool{
	"Employment_Status": true, "Credit_Card_Type": true,
}

// SuggestImputation recommends a strategy for the named column given
// its missing percentage, following the dataset's column classes.
func SuggestImputation(column string, missingPct float64) Suggestion {
	switch {
	case monetaryColumns[column]:
		if missingPct < 5 {
			return Suggestion{
				Strategy:  "median",
				Rationale: fmt.Sprintf("only %.2f%% missing, median fill preserves the distribution", missingPct),
			}
		}
		if missingPct < 20 {
			return Suggestion{
				Strategy:  "mean",
				Rationale: fmt.Sprintf("%.2f%% missing, mean fill is viable but should be validated against correlated features", missingPct),
			}
		}
		return Suggestion{
			Strategy:  "drop_column",
			Rationale: fmt.Sprintf("%.2f%% missing is too high to impute reliably", missingPct),
		}
	case categoricalColumns[column]:
		if missingPct < 10 {
			return Suggestion{
				Strategy:  "mode",
				Rationale: fmt.Sprintf("categorical with %.2f%% missing, fill with the most frequent value", missingPct),
			}
		}
		return Suggestion{
			Strategy:  "unknown",
			Rationale: "create an explicit Unknown category for missing values",
		}
	}
	return Suggestion{
		Strategy:  "review",
		Rationale: fmt.Sprintf("column %s needs domain expert review", column),
	}
}
