// Package urls holds the project URLs printed by the CLI and the form header,
// so they can be changed in one place.
//
// Usage:
//
//	import "github.com/muurk/langform/internal/urls"
//
//	fmt.Printf("Report problems at %s\n", urls.Issues)
package urls
