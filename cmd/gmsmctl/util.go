package main

import "strings"

// trimNewline strips every trailing \r and \n character, the shape a hex
// blob written by `echo` or a text editor typically has.
func trimNewline(s string) string {
	return strings.TrimRight(s, "\r\n")
}
