/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package stat

// severityNames maps journal PRIORITY codes to readable names, following the
// syslog severity levels.
var severityNames = map[string]string{
	"0": "emergency",
	"1": "alert",
	"2": "critical",
	"3": "error",
	"4": "warn",
	"5": "notice",
	"6": "info",
	"7": "debug",
}

// SeverityName resolves a text-coded priority to its name. Codes outside
// "0".."7" resolve to "unknown".
func SeverityName(code string) string {
	if name, ok := severityNames[code]; ok {
		return name
	}
	return "unknown"
}
