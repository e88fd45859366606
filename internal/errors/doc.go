// Package errors is the structured error type shared by every layer of atlas-api.
//
// An Error carries a Code, a user-facing Message, an optional Cause and free-form
// Meta. Codes map one-to-one onto gRPC status codes so handlers can return
// ToGRPCError(err) without inspecting the error themselves.
//
// # Layers
//
// The catalog index and the localization resolver never return errors for
// expected conditions: a lookup miss is (nil, false) and a missing translation
// resolves to a placeholder. Orchestrators turn misses into NotFound errors,
// usually with a "suggestions" entry in Meta:
//
//	item, ok := o.index.Item(input.ItemID)
//	if !ok {
//	    return nil, errors.NotFoundf("item %s not found", input.ItemID).
//	        WithMeta("suggestions", o.index.Suggest(catalog.KindItem, input.ItemID, 3))
//	}
//
// Repositories wrap storage failures with context:
//
//	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
//	    return nil, errors.Wrapf(err, "failed to save preference %s", input.Key)
//	}
//
// Configuration and constructor validation go through the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Index == nil {
//	    vb.RequiredField("Index")
//	}
//	return vb.Build()
package errors
