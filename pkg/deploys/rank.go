package deploys

import (
	"cmp"
	"slices"

	"github.com/roemer/gominutes/pkg/common"
)

// Returns a new slice with the deploys sorted by time, longest first.
// Deploys with the same time are ordered by creation date and then by id.
func Rank(deploys []*common.Deploy) []*common.Deploy {
	ranked := slices.Clone(deploys)
	slices.SortStableFunc(ranked, func(a, b *common.Deploy) int {
		return cmp.Or(
			cmp.Compare(b.Time, a.Time),
			cmp.Compare(a.CreatedAt, b.CreatedAt),
			cmp.Compare(a.Id, b.Id),
		)
	})
	return ranked
}
