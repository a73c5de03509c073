// Package tagedit implements the multi-value language field: a comma-delimited
// text buffer with prefix autocomplete over a fixed vocabulary, and the ordered
// set of tags the user has committed by accepting suggestions.
//
// # Buffer Model
//
// The buffer always has the shape "tag1, tag2, partial". Splitting it on ","
// and trimming each piece gives the committed tags followed by the in-progress
// fragment. Suggestions are derived from that fragment on every change:
//
//	ed := tagedit.NewEditor()
//	ed.OnTextChange("Ja")      // suggestions: JavaScript, Java
//	ed.Accept("Java")          // committed: [Java], buffer: "Java, "
//
// Matching is a case-insensitive prefix match. Duplicate detection on accept is
// an exact, case-sensitive comparison, so "python" and "Python" are distinct tags.
//
// # Dismissal
//
// When the input loses focus the suggestion list is not cleared immediately.
// Blur moves the list to pending-close and hands out a token; the caller
// schedules ExpireBlur(token) after DefaultBlurDelay. Accepting a suggestion or
// refocusing the input in the meantime invalidates the token:
//
//	Open --Blur--> PendingClose --ExpireBlur--> Closed
//	PendingClose --Focus--> Open
//	Open|PendingClose --Accept--> Closed
//
// In the Bubble Tea front end the delay is a tea.Tick message, so the timer and
// key events share one ordered queue and a selection always lands first.
package tagedit
