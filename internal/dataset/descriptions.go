package dataset

// columnDescriptions is the static lookup of human-readable column
// descriptions for the delinquency dataset.
var columnDescriptions = map[string]string{
	"Customer_ID":          "Unique identifier (Categorical)",
	"Age":                  "Customer age in years (Numerical)",
	"Income":               "Annual income in USD (Numerical)",
	"Credit_Score":         "Credit score 300-850 (Numerical)",
	"Credit_Utilization":   "Credit utilization percentage (Numerical)",
	"Missed_Payments":      "Number of missed payments in 12 months (Numerical)",
	"Delinquent_Account":   "Has delinquent account? 0=No, 1=Yes (Binary)",
	"Loan_Balance":         "Outstanding loan balance in USD (Numerical)",
	"Debt_to_Income_Ratio": "Debt to income ratio percentage (Numerical)",
	"Employment_Status":    "Employment status (Categorical)",
	"Account_Tenure":       "Years with active account (Numerical)",
	"Credit_Card_Type":     "Type of credit card (Categorical)",
	"Location":             "Customer location (Categorical)",
	"Month_1":              "Payment month 1 (0=On-time, 1=Late, 2=Missed)",
	"Month_2":              "Payment month 2 (0=On-time, 1=Late, 2=Missed)",
	"Month_3":              "Payment month 3 (0=On-time, 1=Late, 2=Missed)",
	"Month_4":              "Payment month 4 (0=On-time, 1=Late, 2=Missed)",
	"Month_5":              "Payment month 5 (0=On-time, 1=Late, 2=Missed)",
	"Month_6":              "Payment month 6 (0=On-time, 1=Late, 2=Missed)",
}

// descriptionOrder fixes the presentation order of described columns.
var descriptionOrder = []string{
	"Customer_ID", "Age", "Income", "Credit_Score", "Credit_Utilization",
	"Missed_Payments", "Delinquent_Account", "Loan_Balance",
	"Debt_to_Income_Ratio", "Employment_Status", "Account_Tenure",
	"Credit_Card_Type", "Location",
	"Month_1", "Month_2", "Month_3", "Month_4", "Month_5", "Month_6",
}

// Description returns the static description for a column name.
func Description(name string) (string, bool) {
	d, ok := columnDescriptions[name]
	return d, ok
}

// DescribedColumns returns described column names in presentation order.
func DescribedColumns() []string {
	out := make([]string, len(descriptionOrder))
	copy(out, descriptionOrder)
	return out
}
