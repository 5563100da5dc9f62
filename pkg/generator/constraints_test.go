package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
)

func TestSatisfiesStartsAndEndsWith(t *testing.T) {
	perm := actions("a", "b", "c")
	assert.True(t, Satisfies(perm, model.ActionDependency{Action: actions("a")[0], Relation: model.StartsWith}))
	assert.False(t, Satisfies(perm, model.ActionDependency{Action: actions("b")[0], Relation: model.StartsWith}))
	assert.True(t, Satisfies(perm, model.ActionDependency{Action: actions("c")[0], Relation: model.EndsWith}))
	assert.True(t, Satisfies(perm, model.ActionDependency{Action: actions("b")[0], Relation: model.DoesntEndWith}))
}

func TestSatisfiesContains(t *testing.T) {
	perm := actions("a", "b")
	assert.True(t, Satisfies(perm, model.ActionDependency{Action: actions("a")[0], Relation: model.Contains}))
	assert.True(t, Satisfies(perm, model.ActionDependency{Action: actions("z")[0], Relation: model.DoesntContain}))
}

func TestSatisfiesBlocksAndAfterShareAPredicate(t *testing.T) {
	perm := actions("a", "b", "c")
	dep := model.ActionDependency{Action: actions("c")[0], Relation: model.Blocks, Others: actions("a", "b")}
	assert.True(t, Satisfies(perm, dep))

	dep.Relation = model.After
	assert.True(t, Satisfies(perm, dep))

	failing := model.ActionDependency{Action: actions("a")[0], Relation: model.Blocks, Others: actions("c")}
	assert.False(t, Satisfies(perm, failing))
}

func TestSatisfiesDirectlyAfterAndBefore(t *testing.T) {
	perm := actions("a", "b", "c")
	assert.True(t, Satisfies(perm, model.ActionDependency{
		Action: actions("b")[0], Relation: model.DirectlyAfter, Others: actions("a"),
	}))
	assert.False(t, Satisfies(perm, model.ActionDependency{
		Action: actions("c")[0], Relation: model.DirectlyAfter, Others: actions("a"),
	}))
	assert.True(t, Satisfies(perm, model.ActionDependency{
		Action: actions("a")[0], Relation: model.DirectlyBefore, Others: actions("b"),
	}))
}

func TestSatisfiesVacuouslyTrueWhenActionAbsent(t *testing.T) {
	perm := actions("a", "b")
	dep := model.ActionDependency{Action: actions("z")[0], Relation: model.Blocks, Others: actions("a")}
	assert.True(t, Satisfies(perm, dep))
}

func TestSatisfiesAllRequiresEveryDependency(t *testing.T) {
	perm := actions("a", "b", "c")
	deps := []model.ActionDependency{
		{Action: actions("a")[0], Relation: model.StartsWith},
		{Action: actions("c")[0], Relation: model.EndsWith},
	}
	assert.True(t, SatisfiesAll(perm, deps))

	deps = append(deps, model.ActionDependency{Action: actions("b")[0], Relation: model.StartsWith})
	assert.False(t, SatisfiesAll(perm, deps))
}
