// Package domain contains the core types of the view cache.
package domain

import "slices"

// Identity is an opaque token for an object observed through the data engine.
// Two equal tokens mean the object is probably unchanged; they say nothing
// about the values it holds.
type Identity uint64

// NoIdentity marks an object that could not be resolved.
const NoIdentity Identity = 0

// Dataset is a handle to tabular data owned by the data engine.
// The core never inspects a dataset; it only passes it back to the engine.
type Dataset interface {
	Identity() Identity
}

// IdentityOf returns the identity of ds, or NoIdentity if ds is nil.
func IdentityOf(ds Dataset) Identity {
	if ds == nil {
		return NoIdentity
	}
	return ds.Identity()
}

// Shape is the column signature of a frame.
// It is used for change detection only, never as identity.
type Shape struct {
	ColumnCount int
	ColumnNames []string
}

// Equal reports whether both shapes have the same column count and names.
func (s Shape) Equal(other Shape) bool {
	return s.ColumnCount == other.ColumnCount && slices.Equal(s.ColumnNames, other.ColumnNames)
}

// CachedFrame is an object that is currently active in a data viewer.
type CachedFrame struct {
	// CacheKey identifies one independent view session.
	CacheKey string
	// Scope and Object locate the source object, if known.
	Scope  string
	Object string
	// Shape is the last observed column signature.
	Shape Shape
	// Working holds the parameters of the materialized working transform.
	Working TransformSpec
	// Identity is the last observed identity of the source object.
	// It may be stale and is only compared, never dereferenced.
	Identity Identity
}

// NewCachedFrame creates a frame with no working transform.
func NewCachedFrame(cacheKey, scope, object string, identity Identity, shape Shape) CachedFrame {
	return CachedFrame{
		CacheKey: cacheKey,
		Scope:    scope,
		Object:   object,
		Shape:    shape,
		Working:  TransformSpec{OrderDirection: OrderAscending},
		Identity: identity,
	}
}

// Clone returns a deep copy of the frame.
func (f CachedFrame) Clone() CachedFrame {
	out := f
	out.Shape.ColumnNames = slices.Clone(f.Shape.ColumnNames)
	out.Working = f.Working.Clone()
	return out
}

// HasWorkingTransform reports whether the frame records a materialized transform.
func (f CachedFrame) HasWorkingTransform() bool {
	return f.Working.NeedsTransform()
}

// IsBound reports whether the frame can be relocated through its scope.
func (f CachedFrame) IsBound() bool {
	return IsBoundScope(f.Scope)
}

// ShapeKnown reports whether the shape was read from a live object.
func (f CachedFrame) ShapeKnown() bool {
	return f.Identity != NoIdentity || len(f.Shape.ColumnNames) > 0
}
