package tagedit

import "strings"

// Vocabulary is the fixed, ordered list of recognized language tags offered as
// autocomplete candidates. Order matters: suggestions are returned in this order.
var Vocabulary = []string{
	"HTML", "CSS", "JavaScript", "TypeScript", "React", "Vue", "Angular", "SASS", "Tailwind CSS",
	"Node.js", "Express", "PHP", "Ruby", "Python", "Java", "C#", "Spring Boot", ".NET",
	"MySQL", "MongoDB", "PostgreSQL", "SQLite",
	"Docker", "Kubernetes", "Jenkins", "Git", "AWS", "Azure",
}

// Suggest returns every vocabulary entry whose lowercase form starts with the
// lowercase fragment, preserving vocabulary order.
// An empty fragment yields no suggestions.
func Suggest(fragment string) []string {
	if fragment == "" {
		return nil
	}

	prefix := strings.ToLower(fragment)
	var matches []string
	for _, tag := range Vocabulary {
		if strings.HasPrefix(strings.ToLower(tag), prefix) {
			matches = append(matches, tag)
		}
	}
	return matches
}

// InVocabulary reports whether tag is an exact (case-sensitive) vocabulary entry.
func InVocabulary(tag string) bool {
	for _, v := range Vocabulary {
		if v == tag {
			return true
		}
	}
	return false
}

// Canonical returns the vocabulary entry named by tag. An exact entry wins;
// otherwise the first entry equal to tag ignoring case is returned.
func Canonical(tag string) (string, bool) {
	if InVocabulary(tag) {
		return tag, true
	}
	for _, v := range Vocabulary {
		if strings.EqualFold(v, tag) {
			return v, true
		}
	}
	return "", false
}

// SplitBuffer splits a tag buffer on "," and trims each piece.
// The result always has at least one element; the last element is the
// in-progress fragment (possibly empty).
func SplitBuffer(raw string) []string {
	pieces := strings.Split(raw, ",")
	for i, p := range pieces {
		pieces[i] = strings.TrimSpace(p)
	}
	return pieces
}

// Fragment returns the in-progress fragment of a tag buffer: the trimmed text
// after the last comma.
func Fragment(raw string) string {
	pieces := SplitBuffer(raw)
	return pieces[len(pieces)-1]
}

// JoinBuffer renders committed tags as a buffer with an open slot for the next
// fragment ("a, b, "). No tags renders as the empty string.
func JoinBuffer(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return strings.Join(tags, ", ") + ", "
}
