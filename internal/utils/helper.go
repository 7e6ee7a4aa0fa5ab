package utils

import "strconv"

func StrPtr(s string) *string {
	return &s
}

func IntPtr(i int) *int {
	return &i
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func PtrInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// ParseIntDefault parses s as a base-10 int, returning def on empty or bad input.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
