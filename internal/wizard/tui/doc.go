// Package tui implements the full-screen registration form for langform.
//
// Built on Bubble Tea, it follows the Elm architecture: every model is a value,
// Update returns the next model plus a command, and View is a pure function of
// model state. All form state lives in a form.Controller; the models here only
// translate key presses into controller operations and render the result.
//
// # Screens
//
//   - Welcome: title, message and a "Proceed to Form" button
//   - Form: username, email, gender radio, languages with autocomplete, image
//   - Success: acknowledgment of a valid submit, then back to Welcome
//
// All screens share RenderApplicationContainer for layout.
//
// # Suggestion Dismissal
//
// Leaving the languages field does not hide its suggestion list at once. The
// model schedules a blurExpiredMsg with tea.Tick carrying the blur token; the
// list closes only if the token is still current when the message arrives.
// Refocusing the field, or accepting a suggestion, invalidates the token.
//
// # Key Bindings
//
//   - Welcome: enter/space proceed, q quit
//   - Form: tab/shift+tab move focus, ↑/↓ move through suggestions,
//     enter accept, ←/→ pick gender, enter browse image, ctrl+s submit
//   - Success: any key returns to Welcome
//
// ctrl+c quits from every screen.
//
// # Usage Example
//
//	app := tui.NewAppModel(nil, tui.FormOptions{})
//	program := tea.NewProgram(app, tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
package tui
