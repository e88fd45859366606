package localization_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/atlas-api/internal/localization"
)

type ResolveTestSuite struct {
	suite.Suite
}

func TestResolveSuite(t *testing.T) {
	suite.Run(t, new(ResolveTestSuite))
}

func (s *ResolveTestSuite) TestResolveText() {
	testCases := []struct {
		name      string
		values    localization.LocalizedText
		requested string
		fallback  []string
		want      string
		wantOK    bool
	}{
		{
			name: "requested language wins regardless of case",
			values: localization.LocalizedText{
				localization.Text("EN", "Sword"),
				localization.Text("FR", "Épée"),
			},
			requested: "fr",
			fallback:  []string{"EN"},
			want:      "Épée",
			wantOK:    true,
		},
		{
			name: "fallback chain is tried in order",
			values: localization.LocalizedText{
				localization.Text("EN", "Sword"),
				localization.Text("JP", "剣"),
			},
			requested: "FR",
			fallback:  []string{"JP", "EN"},
			want:      "剣",
			wantOK:    true,
		},
		{
			name: "blank requested value is treated as absent",
			values: localization.LocalizedText{
				localization.Text("FR", "   "),
				localization.Text("EN", "Sword"),
			},
			requested: "FR",
			fallback:  []string{"EN"},
			want:      "Sword",
			wantOK:    true,
		},
		{
			name: "remaining values are scanned in document order",
			values: localization.LocalizedText{
				localization.Null("EN"),
				localization.Text("DE", "Schwert"),
				localization.Text("ES", "Espada"),
			},
			requested: "FR",
			fallback:  []string{"EN"},
			want:      "Schwert",
			wantOK:    true,
		},
		{
			name: "nothing usable",
			values: localization.LocalizedText{
				localization.Null("EN"),
				localization.Text("FR", ""),
			},
			requested: "EN",
			wantOK:    false,
		},
		{
			name:      "empty values",
			values:    nil,
			requested: "EN",
			fallback:  []string{"FR"},
			wantOK:    false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, ok := localization.ResolveText(tc.values, tc.requested, tc.fallback)
			s.Equal(tc.wantOK, ok)
			s.Equal(tc.want, got)

			again, againOK := localization.ResolveText(tc.values, tc.requested, tc.fallback)
			s.Equal(got, again)
			s.Equal(ok, againOK)
		})
	}
}

func (s *ResolveTestSuite) TestResolveTextNeverMissesWhenAnyValueExists() {
	values := localization.LocalizedText{
		localization.Null("EN"),
		localization.Text("FR", " "),
		localization.Text("KR", "검"),
	}
	for _, requested := range []string{"EN", "FR", "KR", "XX", ""} {
		_, ok := localization.ResolveText(values, requested, []string{"DE", "EN"})
		s.True(ok, requested)
	}
}

func (s *ResolveTestSuite) TestResolveTextOr() {
	s.Equal("Item #1001", localization.ResolveTextOr(nil, "EN", nil, localization.Placeholder("Item", 1001)))
	s.Equal("Sword", localization.ResolveTextOr(
		localization.LocalizedText{localization.Text("EN", "Sword")}, "EN", nil, "unused"))
}

func (s *ResolveTestSuite) TestNormalizeLanguageCodes() {
	available := []string{"EN", "FR", "JP"}

	testCases := []struct {
		name      string
		requested []string
		available []string
		fallback  []string
		want      []string
	}{
		{
			name:      "keeps requested order and drops duplicates",
			requested: []string{"jp", "EN", "JP", "de"},
			available: available,
			want:      []string{"JP", "EN"},
		},
		{
			name:      "falls back when nothing requested is available",
			requested: []string{"DE"},
			available: available,
			fallback:  []string{"xx", "fr"},
			want:      []string{"FR"},
		},
		{
			name:      "first available when both lists are invalid",
			requested: []string{"DE"},
			available: available,
			fallback:  []string{"KR"},
			want:      []string{"EN"},
		},
		{
			name:      "first available when both lists are empty",
			available: available,
			want:      []string{"EN"},
		},
		{
			name:      "empty only when nothing is available",
			requested: []string{"EN"},
			fallback:  []string{"EN"},
			want:      []string{},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, localization.NormalizeLanguageCodes(tc.requested, tc.available, tc.fallback))
		})
	}
}
