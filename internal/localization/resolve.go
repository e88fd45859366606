package localization

import "fmt"

// ResolveText picks the best text for requested. It tries the requested
// language, then each fallback in order, then every remaining value in
// document order. Blank values count as missing. ok is false only when no
// language has usable text.
func ResolveText(values LocalizedText, requested string, fallback []string) (text string, ok bool) {
	if text, ok = values.Get(requested); ok {
		return text, true
	}

	for _, code := range fallback {
		if text, ok = values.Get(code); ok {
			return text, true
		}
	}

	for _, e := range values {
		if text, ok = usable(e.Value); ok {
			return text, true
		}
	}

	return "", false
}

// ResolveTextOr is ResolveText with a caller supplied placeholder for a miss
func ResolveTextOr(values LocalizedText, requested string, fallback []string, placeholder string) string {
	if text, ok := ResolveText(values, requested, fallback); ok {
		return text
	}
	return placeholder
}

// Placeholder renders the default label for an entity without a name,
// e.g. Placeholder("Item", 1001) == "Item #1001".
func Placeholder(kind string, id any) string {
	return fmt.Sprintf("%s #%v", kind, id)
}

// NormalizeLanguageCodes returns the requested codes that exist in available,
// in first-seen order without duplicates. When none survive the fallback list
// is tried the same way, and after that the first available language is used.
// The result is empty only when available is empty.
func NormalizeLanguageCodes(requested, available, fallback []string) []string {
	if selected := filterAvailable(requested, available); len(selected) > 0 {
		return selected
	}

	if selected := filterAvailable(fallback, available); len(selected) > 0 {
		return selected
	}

	if len(available) > 0 {
		return []string{available[0]}
	}

	return []string{}
}

func filterAvailable(codes, available []string) []string {
	if len(codes) == 0 || len(available) == 0 {
		return nil
	}

	canonical := make(map[string]string, len(available))
	for _, code := range available {
		key := NormalizeCode(code)
		if _, exists := canonical[key]; !exists {
			canonical[key] = code
		}
	}

	seen := make(map[string]struct{}, len(codes))
	var selected []string
	for _, code := range codes {
		key := NormalizeCode(code)
		match, ok := canonical[key]
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		selected = append(selected, match)
	}
	return selected
}
