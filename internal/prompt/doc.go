// Package prompt is the line-oriented front end for the registration form.
//
// It asks for each field in turn through a Driver, the survey/v2 backed
// SurveyDriver in production and a scripted driver in tests, and feeds the
// answers into the same form.Controller the full-screen form uses. Languages
// are added one per answer with tab completion from the vocabulary; an empty
// answer ends the list.
//
// After a failed submit the validation errors are printed and only the
// failing fields are asked again. Interrupting a prompt returns ErrAborted.
package prompt
