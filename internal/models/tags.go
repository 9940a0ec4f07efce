package models

import "strings"

// AddTag returns tags with tag added. The tag is trimmed first; blank tags
// and tags already present leave the collection unchanged.
// The input slice is never modified.
func AddTag(tags []string, tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "" || containsTag(tags, tag) {
		return tags
	}
	out := make([]string, 0, len(tags)+1)
	out = append(out, tags...)
	return append(out, tag)
}

// RemoveTag returns tags without tag. Removing an absent tag is a no-op.
// The input slice is never modified.
func RemoveTag(tags []string, tag string) []string {
	if !containsTag(tags, tag) {
		return tags
	}
	out := make([]string, 0, len(tags)-1)
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

// NormalizeTags folds an arbitrary list into a tag set, keeping first occurrences
func NormalizeTags(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		out = AddTag(out, t)
	}
	return out
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
