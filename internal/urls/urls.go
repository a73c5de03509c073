package urls

// Repository is the project home, shown in the form header.
const Repository = "https://github.com/muurk/langform"

// Issues is where users report problems the CLI cannot recover from.
const Issues = Repository + "/issues"

// Short strips the scheme for display in narrow layouts.
func Short(url string) string {
	for _, scheme := range []string{"https://", "http://"} {
		if len(url) > len(scheme) && url[:len(scheme)] == scheme {
			return url[len(scheme):]
		}
	}
	return url
}
