// Package v1alpha1 serves the atlas catalog and preference APIs over gRPC.
//
// Messages are google.protobuf.Struct documents. Requests are decoded into
// plain structs through their JSON form and responses are encoded the same
// way, so field names match the catalog JSON documents (camelCase).
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Fully qualified service names
const (
	CatalogServiceName    = "atlas.v1alpha1.CatalogService"
	PreferenceServiceName = "atlas.v1alpha1.PreferenceService"
)

// StructMethod is the shape of every unary method in both services
type StructMethod func(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

// CatalogServiceServer is the server API for CatalogService
type CatalogServiceServer interface {
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCategory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCategories(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCodes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListLanguages(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// PreferenceServiceServer is the server API for PreferenceService
type PreferenceServiceServer interface {
	RegisterClient(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetPreferences(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ToggleMarker(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResetMarkers(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ToggleCode(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResetCodes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetMenuOpen(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ToggleCategoryVisibility(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ToggleCategoryExpanded(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetSidebarWidth(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetSelectedMap(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// CatalogServiceDesc is the grpc.ServiceDesc for CatalogService
var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CatalogServiceName, "GetCharacter", func(s CatalogServiceServer) StructMethod { return s.GetCharacter }),
		unary(CatalogServiceName, "GetItem", func(s CatalogServiceServer) StructMethod { return s.GetItem }),
		unary(CatalogServiceName, "GetDraft", func(s CatalogServiceServer) StructMethod { return s.GetDraft }),
		unary(CatalogServiceName, "GetCategory", func(s CatalogServiceServer) StructMethod { return s.GetCategory }),
		unary(CatalogServiceName, "ListCategories", func(s CatalogServiceServer) StructMethod { return s.ListCategories }),
		unary(CatalogServiceName, "ListCharacters", func(s CatalogServiceServer) StructMethod { return s.ListCharacters }),
		unary(CatalogServiceName, "ListCodes", func(s CatalogServiceServer) StructMethod { return s.ListCodes }),
		unary(CatalogServiceName, "ListLanguages", func(s CatalogServiceServer) StructMethod { return s.ListLanguages }),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "atlas/v1alpha1/catalog.proto",
}

// PreferenceServiceDesc is the grpc.ServiceDesc for PreferenceService
var PreferenceServiceDesc = grpc.ServiceDesc{
	ServiceName: PreferenceServiceName,
	HandlerType: (*PreferenceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(PreferenceServiceName, "RegisterClient", func(s PreferenceServiceServer) StructMethod { return s.RegisterClient }),
		unary(PreferenceServiceName, "GetPreferences", func(s PreferenceServiceServer) StructMethod { return s.GetPreferences }),
		unary(PreferenceServiceName, "ToggleMarker", func(s PreferenceServiceServer) StructMethod { return s.ToggleMarker }),
		unary(PreferenceServiceName, "ResetMarkers", func(s PreferenceServiceServer) StructMethod { return s.ResetMarkers }),
		unary(PreferenceServiceName, "ToggleCode", func(s PreferenceServiceServer) StructMethod { return s.ToggleCode }),
		unary(PreferenceServiceName, "ResetCodes", func(s PreferenceServiceServer) StructMethod { return s.ResetCodes }),
		unary(PreferenceServiceName, "SetMenuOpen", func(s PreferenceServiceServer) StructMethod { return s.SetMenuOpen }),
		unary(PreferenceServiceName, "ToggleCategoryVisibility", func(s PreferenceServiceServer) StructMethod { return s.ToggleCategoryVisibility }),
		unary(PreferenceServiceName, "ToggleCategoryExpanded", func(s PreferenceServiceServer) StructMethod { return s.ToggleCategoryExpanded }),
		unary(PreferenceServiceName, "SetSidebarWidth", func(s PreferenceServiceServer) StructMethod { return s.SetSidebarWidth }),
		unary(PreferenceServiceName, "SetSelectedMap", func(s PreferenceServiceServer) StructMethod { return s.SetSelectedMap }),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "atlas/v1alpha1/preferences.proto",
}

// RegisterCatalogServiceServer registers srv on s
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

// RegisterPreferenceServiceServer registers srv on s
func RegisterPreferenceServiceServer(s grpc.ServiceRegistrar, srv PreferenceServiceServer) {
	s.RegisterService(&PreferenceServiceDesc, srv)
}

// unary builds a method descriptor that decodes a Struct request, runs the
// interceptor chain and dispatches to the method picked from the server.
func unary[S any](service, method string, pick func(S) StructMethod) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			call := pick(srv.(S))
			if interceptor == nil {
				return call(ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// Client calls either service over a connection
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client over cc
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes service/method with a request document
func (c *Client) Call(ctx context.Context, service, method string, req map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+service+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
