package ptr

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// StringValue dereferences p, returning "" for nil
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// NonEmptyString returns nil for "", used where unset and empty are the same on chain
func NonEmptyString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// Uint64 return a pointer to the input value
func Uint64(value uint64) *uint64 {
	return &value
}

// Bool return a pointer to the input value
func Bool(value bool) *bool {
	return &value
}
