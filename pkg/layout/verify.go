package layout

import "github.com/adaptation-pathways/pathwaymap/pkg/pathwaymap"

// VerifyTippingPoints walks pm root-to-leaf and fails with
// NonMonotonicTippingPoints at the first A->B edge where B's tipping point
// is smaller than A's. Callers should run this before Classic: the
// horizontal pass trusts the map's tipping points without re-checking them.
func VerifyTippingPoints(pm *pathwaymap.PathwayMap) error {
	return pm.VerifyTippingPoints()
}
