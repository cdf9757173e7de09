package authorization

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHierarchy is an in-memory containment forest for resolver tests.
type fakeHierarchy struct {
	epcisByRegion    map[uint][]uint
	communesByEPCI   map[uint][]uint
	regionQueryCount int
	epciQueryCount   int
}

func (f *fakeHierarchy) EPCIIDsByRegionIDs(_ context.Context, regionIDs []uint) ([]uint, error) {
	f.regionQueryCount++
	var out []uint
	for _, id := range regionIDs {
		out = append(out, f.epcisByRegion[id]...)
	}
	return out, nil
}

func (f *fakeHierarchy) CommuneIDsByEPCIIDs(_ context.Context, epciIDs []uint) ([]uint, error) {
	f.epciQueryCount++
	var out []uint
	for _, id := range epciIDs {
		out = append(out, f.communesByEPCI[id]...)
	}
	return out, nil
}

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

// TestResolve_RegionCascadesToEPCIsAndCommunes covers the reference
// scenario: Region 7 containing EPCI 3 containing communes 101 and 102.
func TestResolve_RegionCascadesToEPCIsAndCommunes(t *testing.T) {
	h := &fakeHierarchy{
		epcisByRegion:  map[uint][]uint{7: {3}},
		communesByEPCI: map[uint][]uint{3: {101, 102}},
	}
	resolver := NewResolver(h)

	result, err := resolver.Resolve(context.Background(), []Assignment{
		{UserID: 1, RegionID: uintPtr(7)},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{7}, result.Regions.ToSortedSlice())
	assert.Equal(t, []uint{3}, result.EPCIs.ToSortedSlice())
	assert.Equal(t, []uint{101, 102}, result.Communes.ToSortedSlice())
}

// TestResolve_NoAssignments verifies that zero assignments yield three empty
// sets without hitting the hierarchy store.
func TestResolve_NoAssignments(t *testing.T) {
	h := &fakeHierarchy{}
	resolver := NewResolver(h)

	result, err := resolver.Resolve(context.Background(), nil)

	require.NoError(t, err)
	assert.True(t, result.Regions.IsEmpty())
	assert.True(t, result.EPCIs.IsEmpty())
	assert.True(t, result.Communes.IsEmpty())
	assert.False(t, result.HasAreaAuthority())
	assert.Zero(t, h.regionQueryCount)
	assert.Zero(t, h.epciQueryCount)
}

// TestResolve_DirectEPCIAndCommuneMix verifies that direct EPCI assignments
// expand to communes and merge with direct commune assignments.
func TestResolve_DirectEPCIAndCommuneMix(t *testing.T) {
	h := &fakeHierarchy{
		communesByEPCI: map[uint][]uint{4: {200, 201}},
	}
	resolver := NewResolver(h)

	result, err := resolver.Resolve(context.Background(), []Assignment{
		{UserID: 1, EPCIID: uintPtr(4)},
		{UserID: 1, CommuneID: uintPtr(999)},
	})

	require.NoError(t, err)
	assert.True(t, result.Regions.IsEmpty())
	assert.Equal(t, []uint{4}, result.EPCIs.ToSortedSlice())
	assert.Equal(t, []uint{200, 201, 999}, result.Communes.ToSortedSlice())
}

// TestResolve_DuplicateEdgesDoNotDuplicateIDs verifies set semantics when
// the store returns overlapping child lists.
func TestResolve_DuplicateEdgesDoNotDuplicateIDs(t *testing.T) {
	h := &fakeHierarchy{
		epcisByRegion:  map[uint][]uint{1: {10}, 2: {10}},
		communesByEPCI: map[uint][]uint{10: {100, 100}},
	}
	resolver := NewResolver(h)

	result, err := resolver.Resolve(context.Background(), []Assignment{
		{UserID: 1, RegionID: uintPtr(1)},
		{UserID: 1, RegionID: uintPtr(2)},
		{UserID: 1, EPCIID: uintPtr(10)},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{10}, result.EPCIs.ToSortedSlice())
	assert.Equal(t, []uint{100}, result.Communes.ToSortedSlice())
}

// TestResolve_Idempotent verifies that resolving a closure's own areas as
// direct assignments reproduces the closure.
func TestResolve_Idempotent(t *testing.T) {
	h := &fakeHierarchy{
		epcisByRegion:  map[uint][]uint{7: {3, 5}},
		communesByEPCI: map[uint][]uint{3: {101, 102}, 5: {103}},
	}
	resolver := NewResolver(h)

	first, err := resolver.Resolve(context.Background(), []Assignment{
		{UserID: 1, RegionID: uintPtr(7)},
	})
	require.NoError(t, err)

	var asDirect []Assignment
	for _, regionID := range first.Regions.ToSortedSlice() {
		rid := regionID
		asDirect = append(asDirect, Assignment{UserID: 1, RegionID: &rid})
	}
	for _, epciID := range first.EPCIs.ToSortedSlice() {
		eid := epciID
		asDirect = append(asDirect, Assignment{UserID: 1, EPCIID: &eid})
	}
	for _, communeID := range first.Communes.ToSortedSlice() {
		cid := communeID
		asDirect = append(asDirect, Assignment{UserID: 1, CommuneID: &cid})
	}

	second, err := resolver.Resolve(context.Background(), asDirect)
	require.NoError(t, err)

	assert.True(t, first.Regions.Equal(second.Regions))
	assert.True(t, first.EPCIs.Equal(second.EPCIs))
	assert.True(t, first.Communes.Equal(second.Communes))
}

// TestResolve_MonotonicUnderAddedRegion verifies that granting an extra
// region never shrinks the resolved EPCI or commune sets.
func TestResolve_MonotonicUnderAddedRegion(t *testing.T) {
	h := &fakeHierarchy{
		epcisByRegion:  map[uint][]uint{1: {10}, 2: {20}},
		communesByEPCI: map[uint][]uint{10: {100}, 20: {200, 201}},
	}
	resolver := NewResolver(h)

	base, err := resolver.Resolve(context.Background(), []Assignment{
		{UserID: 1, RegionID: uintPtr(1)},
	})
	require.NoError(t, err)

	widened, err := resolver.Resolve(context.Background(), []Assignment{
		{UserID: 1, RegionID: uintPtr(1)},
		{UserID: 1, RegionID: uintPtr(2)},
	})
	require.NoError(t, err)

	for _, id := range base.EPCIs.ToSlice() {
		assert.True(t, widened.EPCIs.Has(id), "EPCI %d lost after widening", id)
	}
	for _, id := range base.Communes.ToSlice() {
		assert.True(t, widened.Communes.Has(id), "commune %d lost after widening", id)
	}
	assert.GreaterOrEqual(t, widened.Communes.Len(), base.Communes.Len())
}

// TestResolve_InfrastructureAssignmentsStaySeparate verifies that direct
// infrastructure grants never leak into the area sets.
func TestResolve_InfrastructureAssignmentsStaySeparate(t *testing.T) {
	h := &fakeHierarchy{}
	resolver := NewResolver(h)

	result, err := resolver.Resolve(context.Background(), []Assignment{
		{UserID: 1, InfrastructureID: strPtr("infra_a1B2c3D4e5F6")},
	})

	require.NoError(t, err)
	assert.False(t, result.HasAreaAuthority())
	assert.True(t, result.Infrastructures.Has("infra_a1B2c3D4e5F6"))
	assert.Equal(t, 1, result.Infrastructures.Len())
}

// TestResolve_IgnoresZeroAndEmptyReferences verifies that malformed
// assignment rows do not pollute the closure.
func TestResolve_IgnoresZeroAndEmptyReferences(t *testing.T) {
	h := &fakeHierarchy{}
	resolver := NewResolver(h)

	result, err := resolver.Resolve(context.Background(), []Assignment{
		{UserID: 1, RegionID: uintPtr(0)},
		{UserID: 1, InfrastructureID: strPtr("")},
		{UserID: 1},
	})

	require.NoError(t, err)
	assert.True(t, result.Regions.IsEmpty())
	assert.True(t, result.Infrastructures.IsEmpty())
}
