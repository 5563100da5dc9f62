package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/pathwaymap"
)

func TestActionLevelByFirstOccurrenceOrdersByFirstPathThenPosition(t *testing.T) {
	b := pathwaymap.NewBuilder()
	rootBegin := b.AddBegin(model.ActionBegin{Action: model.Action{Name: "current"}})
	rootEnd := b.AddEnd(model.ActionEnd{Action: model.Action{Name: "current"}})
	b.AddLifetimeEdge(rootBegin, rootEnd)

	aBegin := b.AddBegin(model.ActionBegin{Action: model.Action{Name: "a"}})
	aEnd := b.AddEnd(model.ActionEnd{Action: model.Action{Name: "a"}, TippingPoint: 1})
	b.AddConversionEdge(rootEnd, aBegin)
	b.AddLifetimeEdge(aBegin, aEnd)

	bBegin := b.AddBegin(model.ActionBegin{Action: model.Action{Name: "b"}})
	bEnd := b.AddEnd(model.ActionEnd{Action: model.Action{Name: "b"}, TippingPoint: 2})
	b.AddConversionEdge(rootEnd, bBegin)
	b.AddLifetimeEdge(bBegin, bEnd)

	pm := b.Build()

	levels, err := ActionLevelByFirstOccurrence(pm)
	require.NoError(t, err)
	assert.Less(t, levels["current"], levels["a"])
	assert.Less(t, levels["a"], levels["b"])
}
