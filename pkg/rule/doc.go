// Package rule implements the text-rewrite rules applied to Markdown
// documents.
//
// Each [Rule] wraps a single compiled regular expression. Applying a rule
// removes every non-overlapping match from the input. A rule never fails:
// text without a match is returned unchanged.
package rule
