package v1alpha1

import (
	"context"
	"encoding/json"
	"strings"

	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/atlas-api/internal/errors"
	"github.com/KirkDiggler/atlas-api/internal/orchestrators/catalog"
)

// AcceptLanguageHeader is the metadata key carrying the client's Accept-Language
const AcceptLanguageHeader = "accept-language"

// decode fills v from the request document's JSON form
func decode(req *structpb.Struct, v any) error {
	if req == nil {
		return nil
	}

	data, err := protojson.Marshal(req)
	if err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}

// encode converts v to a response document through its JSON form
func encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	out := new(structpb.Struct)
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

// respond encodes v, converting any failure to a gRPC status
func respond(v any, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	out, err := encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// languageRequest merges the explicit language field with the
// Accept-Language metadata sent by the client
func languageRequest(ctx context.Context, language string) catalog.LanguageRequest {
	req := catalog.LanguageRequest{Language: language}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		req.AcceptLanguage = strings.Join(md.Get(AcceptLanguageHeader), ",")
	}
	return req
}
