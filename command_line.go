package zeroarg

import "os"

// ParseCommandLine classifies the process argument list. The leading element
// of os.Args is the binary name, not data, and is skipped.
func ParseCommandLine() (Tokens, error) {
	return Classify(os.Args[1:])
}
