package localization

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// gameTags covers the codes the game uses that are not valid BCP 47 tags on
// their own, or that need a script to match correctly.
var gameTags = map[string]language.Tag{
	"JP":    language.Japanese,
	"KR":    language.Korean,
	"CN":    language.SimplifiedChinese,
	"ZH-CN": language.SimplifiedChinese,
	"TW":    language.TraditionalChinese,
	"ZH-TW": language.TraditionalChinese,
	"PT-BR": language.BrazilianPortuguese,
}

// TagFor maps a game language code to a BCP 47 tag, or language.Und
func TagFor(code string) language.Tag {
	code = NormalizeCode(code)
	if tag, ok := gameTags[code]; ok {
		return tag
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und
	}
	return tag
}

// DisplayName returns the language's name written in that language
// ("Français", "日本語"). Unknown codes return the code itself.
func DisplayName(code string) string {
	tag := TagFor(code)
	if tag == language.Und {
		return NormalizeCode(code)
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return NormalizeCode(code)
}

// Matcher turns client language preferences (Accept-Language) into the
// catalog's own language codes.
type Matcher struct {
	codes   []string
	matcher language.Matcher
}

// NewMatcher builds a matcher over the catalog's available languages. Codes
// that cannot be mapped to a tag are never matched.
func NewMatcher(available []string) *Matcher {
	m := &Matcher{}
	var tags []language.Tag
	for _, code := range available {
		tag := TagFor(code)
		if tag == language.Und {
			continue
		}
		m.codes = append(m.codes, NormalizeCode(code))
		tags = append(tags, tag)
	}
	if len(tags) > 0 {
		m.matcher = language.NewMatcher(tags)
	}
	return m
}

// FromAcceptLanguage returns the catalog codes the header asks for, most
// preferred first. A malformed or empty header yields nil.
func (m *Matcher) FromAcceptLanguage(header string) []string {
	if m == nil || m.matcher == nil || header == "" {
		return nil
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	var codes []string
	for _, tag := range tags {
		_, idx, confidence := m.matcher.Match(tag)
		if confidence == language.No {
			continue
		}
		code := m.codes[idx]
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}
