package extract

import "regexp"

// Patterns is the immutable pattern configuration of the engine. One
// instance is built once and shared by reference across calls; it is
// safe for concurrent use since compiled regexps are read-only.
type Patterns struct {
	lineFormats []lineFormat

	frame    *regexp.Regexp
	elision  *regexp.Regexp
	headText *regexp.Regexp
	causedBy *regexp.Regexp
	typeSig  *regexp.Regexp

	headerPrefixes []string
}

// lineFormat is one (pattern, extractor) pair of the ordered classifier
// fallback chain.
type lineFormat struct {
	re      *regexp.Regexp
	extract func(match []string) (timestamp, level, message string)
}

// NewPatterns compiles the supported log formats, most specific first:
//  1. YYYY-MM-DD HH:MM:SS.mmm LEVEL PID --- [THREAD] LOGGER : MESSAGE
//  2. YYYY-MM-DD HH:MM:SS LEVEL MESSAGE
//  3. YYYY-MM-DD HH:MM:SS MESSAGE        (level implicitly INFO)
func NewPatterns() *Patterns {
	return &Patterns{
		lineFormats: []lineFormat{
			{
				re: regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3})\s+(\w+)\s+(\d+)\s+---\s+\[([^\]]+)\]\s+(\S+)\s*:\s*(.*)$`),
				extract: func(m []string) (string, string, string) {
					return m[1], m[2], m[6]
				},
			},
			{
				re: regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\s+(TRACE|DEBUG|INFO|WARN|ERROR|FATAL)\s+(.*)$`),
				extract: func(m []string) (string, string, string) {
					return m[1], m[2], m[3]
				},
			},
			{
				re: regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\s+(.*)$`),
				extract: func(m []string) (string, string, string) {
					return m[1], "INFO", m[2]
				},
			},
		},

		frame:    regexp.MustCompile(`^\s*at\s+([\w$.<>/]+)\(([^:()]+):(\d+)\)`),
		elision:  regexp.MustCompile(`^\s*\.\.\.\s+\d+\s+more`),
		headText: regexp.MustCompile(`^[\w.$]+(?:Exception|Error)(?::|$)`),
		causedBy: regexp.MustCompile(`^Caused by:\s+[\w.$]+`),
		typeSig:  regexp.MustCompile(`([\w$]+(?:Exception|Error))(?::\s*(.*))?$`),

		headerPrefixes: []string{
			"org.springframework.",
			"org.hibernate.",
			"java.lang.",
			"java.sql.",
			"java.io.",
			"jakarta.",
			"javax.",
		},
	}
}
