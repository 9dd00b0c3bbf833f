package cmdline

import "strings"

// quote wraps value in the quoting string, escaping every occurrence of the
// quoting string inside value with a backslash. An empty quoting string
// returns value unchanged.
//
// This is presentation-level quoting only and is not safe to hand to a shell
// with untrusted input. Executors always use the array form.
func quote(value, quoting string) string {
	if quoting == "" {
		return value
	}
	escaped := strings.ReplaceAll(value, quoting, `\`+quoting)
	return quoting + escaped + quoting
}
