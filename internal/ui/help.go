package ui

// helpText is the full-screen instructions overlay. While it is visible it
// replaces the entire panel layout; key handling is unaffected.
const helpText = `Instructions:
 - Up/Down: Navigate the ML stock list
 - Enter (List mode): Preprocess & run the model on the selected stock
 - s: Activate the search box
 - In Search mode: Type a ticker and press Enter to download data
 - Esc (in Search mode): Cancel search
 - h: Toggle this instructions overlay
 - q: Quit`

func renderHelp(width, height int) string {
	return panel("Instructions", helpText, width, height)
}
