package ui

import "fmt"

// formatAmount formats a monetary amount with two decimals.
func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// formatSigned formats a signed change with an explicit sign.
func formatSigned(v float64) string {
	return fmt.Sprintf("%+.2f", v)
}

// formatPct formats a percentage with two decimals and a trailing %.
func formatPct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// changeStyled renders a signed value green for gains and red for losses.
func changeStyled(s string, v float64) string {
	if v < 0 {
		return lossStyle.Render(s)
	}
	return gainStyle.Render(s)
}
