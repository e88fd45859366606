package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/atlas-api/internal/entities/gamedata"
	"github.com/KirkDiggler/atlas-api/internal/errors"
	"github.com/KirkDiggler/atlas-api/internal/handlers/atlas/v1alpha1"
	"github.com/KirkDiggler/atlas-api/internal/orchestrators/catalog"
	catalogmock "github.com/KirkDiggler/atlas-api/internal/orchestrators/catalog/mock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *catalogmock.MockService
	handler     *v1alpha1.CatalogHandler
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewCatalogHandler(&v1alpha1.CatalogHandlerConfig{
		CatalogService: s.mockCatalog,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CatalogHandlerTestSuite) TestNewCatalogHandlerValidation() {
	_, err := v1alpha1.NewCatalogHandler(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewCatalogHandler(&v1alpha1.CatalogHandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func mustStruct(s *suite.Suite, fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *CatalogHandlerTestSuite) TestGetCharacterPassesLanguages() {
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("accept-language", "fr-CH, en;q=0.8"))

	s.mockCatalog.EXPECT().
		GetCharacter(ctx, &catalog.GetCharacterInput{
			ID: "abc",
			LanguageRequest: catalog.LanguageRequest{
				Language:       "JP",
				AcceptLanguage: "fr-CH, en;q=0.8",
			},
		}).
		Return(&catalog.GetCharacterOutput{
			Character: &gamedata.Character{ID: "abc", CharID: 101},
			Display: &catalog.Display{
				Language:  "JP",
				Languages: []string{"JP", "EN"},
				Name:      "アバディーン",
				Title:     "Scout",
			},
		}, nil)

	resp, err := s.handler.GetCharacter(ctx, mustStruct(&s.Suite, map[string]any{
		"id":       "abc",
		"language": "JP",
	}))
	s.Require().NoError(err)

	character := resp.GetFields()["character"].GetStructValue()
	s.Equal("abc", character.GetFields()["id"].GetStringValue())
	s.Equal(float64(101), character.GetFields()["charId"].GetNumberValue())

	display := resp.GetFields()["display"].GetStructValue()
	s.Equal("JP", display.GetFields()["language"].GetStringValue())
	s.Equal("アバディーン", display.GetFields()["name"].GetStringValue())
	s.Equal("Scout", display.GetFields()["title"].GetStringValue())
	s.Len(display.GetFields()["languages"].GetListValue().GetValues(), 2)
}

func (s *CatalogHandlerTestSuite) TestGetCharacterWithoutMetadata() {
	ctx := context.Background()

	s.mockCatalog.EXPECT().
		GetCharacter(ctx, &catalog.GetCharacterInput{ID: "lumen"}).
		Return(&catalog.GetCharacterOutput{
			Character: &gamedata.Character{ID: "lumen"},
			Display:   &catalog.Display{Language: "EN", Name: "Lumen"},
		}, nil)

	resp, err := s.handler.GetCharacter(ctx, mustStruct(&s.Suite, map[string]any{"id": "lumen"}))
	s.Require().NoError(err)
	s.Equal("Lumen", resp.GetFields()["display"].GetStructValue().GetFields()["name"].GetStringValue())
}

func (s *CatalogHandlerTestSuite) TestGetItemNotFoundCarriesSuggestions() {
	ctx := context.Background()

	s.mockCatalog.EXPECT().
		GetItem(ctx, &catalog.GetItemInput{ID: "iron_swrd"}).
		Return(nil, errors.NotFound("item iron_swrd not found").
			WithMeta(catalog.MetaSuggestions, []string{"iron_sword"}))

	_, err := s.handler.GetItem(ctx, mustStruct(&s.Suite, map[string]any{"id": "iron_swrd"}))
	s.Require().Error(err)

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())

	converted := errors.FromGRPCError(err)
	s.True(errors.IsNotFound(converted))
	s.Equal([]any{"iron_sword"}, errors.GetMeta(converted)[catalog.MetaSuggestions])
}

func (s *CatalogHandlerTestSuite) TestMalformedRequest() {
	_, err := s.handler.GetItem(context.Background(), mustStruct(&s.Suite, map[string]any{"id": 42}))
	s.Require().Error(err)

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
}

func (s *CatalogHandlerTestSuite) TestListCodesActiveOnly() {
	ctx := context.Background()

	s.mockCatalog.EXPECT().
		ListCodes(ctx, &catalog.ListCodesInput{ActiveOnly: true}).
		Return(&catalog.ListCodesOutput{
			Language: "EN",
			Codes: []*catalog.CodeView{
				{Code: "WELCOME", Rewards: "100 gems"},
			},
		}, nil)

	resp, err := s.handler.ListCodes(ctx, mustStruct(&s.Suite, map[string]any{"activeOnly": true}))
	s.Require().NoError(err)

	s.Equal("EN", resp.GetFields()["language"].GetStringValue())
	codesList := resp.GetFields()["codes"].GetListValue().GetValues()
	s.Require().Len(codesList, 1)
	code := codesList[0].GetStructValue().GetFields()
	s.Equal("WELCOME", code["code"].GetStringValue())
	s.Equal("100 gems", code["rewards"].GetStringValue())
	s.False(code["expired"].GetBoolValue())
	s.NotContains(code, "expiresAt")
}

func (s *CatalogHandlerTestSuite) TestListLanguages() {
	ctx := context.Background()

	s.mockCatalog.EXPECT().
		ListLanguages(ctx, &catalog.ListLanguagesInput{}).
		Return(&catalog.ListLanguagesOutput{
			Languages: []*catalog.LanguageInfo{
				{Code: "EN", DisplayName: "English", Default: true},
				{Code: "FR", DisplayName: "français"},
			},
			Default:  "EN",
			Fallback: []string{"EN"},
		}, nil)

	resp, err := s.handler.ListLanguages(ctx, nil)
	s.Require().NoError(err)

	s.Equal("EN", resp.GetFields()["default"].GetStringValue())
	languages := resp.GetFields()["languages"].GetListValue().GetValues()
	s.Require().Len(languages, 2)
	s.True(languages[0].GetStructValue().GetFields()["default"].GetBoolValue())
	s.Equal("français", languages[1].GetStructValue().GetFields()["displayName"].GetStringValue())
}

func (s *CatalogHandlerTestSuite) TestInternalErrorMapsToStatus() {
	ctx := context.Background()

	s.mockCatalog.EXPECT().
		ListCategories(ctx, &catalog.ListCategoriesInput{}).
		Return(nil, errors.Internal("index unavailable"))

	_, err := s.handler.ListCategories(ctx, nil)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Equal("index unavailable", st.Message())
}
