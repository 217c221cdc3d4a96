package batch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowsched/batch"
	"github.com/katalvlaran/flowsched/catalog"
	"github.com/katalvlaran/flowsched/parse"
	"github.com/katalvlaran/flowsched/search"
)

const sampleBlueprints = `Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.`

func sampleJobs(t *testing.T) []batch.Job {
	t.Helper()
	bps, err := parse.Blueprints(sampleBlueprints)
	require.NoError(t, err)

	return batch.FromBlueprints(bps)
}

func TestEvaluate_QualitySum(t *testing.T) {
	res, err := batch.Evaluate(context.Background(), sampleJobs(t), 24)
	require.NoError(t, err)
	assert.Equal(t, []batch.Result{{ID: 1, Value: 9}, {ID: 2, Value: 12}}, res)
	assert.Equal(t, int64(33), batch.QualitySum(res))
}

func TestEvaluate_LongHorizonProduct(t *testing.T) {
	if testing.Short() {
		t.Skip("long horizon")
	}
	res, err := batch.Evaluate(context.Background(), sampleJobs(t), 32, batch.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, int64(56*62), batch.Product(res, 3))
}

func TestEvaluate_OrderIndependentOfWorkers(t *testing.T) {
	var jobs []batch.Job
	for i := 0; i < 4; i++ {
		jobs = append(jobs, sampleJobs(t)...)
	}
	one, err := batch.Evaluate(context.Background(), jobs, 20, batch.WithWorkers(1))
	require.NoError(t, err)
	many, err := batch.Evaluate(context.Background(), jobs, 20, batch.WithWorkers(8),
		batch.WithSearchOptions(search.WithTopTierFirst(true)))
	require.NoError(t, err)
	assert.Equal(t, one, many)
	require.Len(t, many, 8)
	assert.Equal(t, 1, many[6].ID)
	assert.Equal(t, 2, many[7].ID)
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := batch.Evaluate(context.Background(), nil, 5, batch.WithWorkers(-1))
	assert.ErrorIs(t, err, batch.ErrOptionViolation)

	_, err = batch.Evaluate(context.Background(), []batch.Job{{ID: 9}}, 5)
	assert.ErrorIs(t, err, search.ErrNilCatalog)

	res, err := batch.Evaluate(context.Background(), nil, 5)
	require.NoError(t, err)
	assert.Empty(t, res)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = batch.Evaluate(ctx, sampleJobs(t), 24)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAggregates(t *testing.T) {
	res := []batch.Result{{ID: 1, Value: 3}, {ID: 2, Value: 4}, {ID: 3, Value: 5}}
	assert.Equal(t, int64(1*3+2*4+3*5), batch.QualitySum(res))
	assert.Equal(t, int64(12), batch.Product(res, 2))
	assert.Equal(t, int64(60), batch.Product(res, 10))
	assert.Equal(t, int64(1), batch.Product(nil, 3))
	assert.Equal(t, int64(0), batch.QualitySum(nil))
}

func TestFromBlueprints(t *testing.T) {
	c, err := catalog.NewBuildCatalog(catalog.BuildSpec{Kinds: []string{"ore"}, Target: "ore"})
	require.NoError(t, err)
	jobs := batch.FromBlueprints([]parse.Blueprint{{ID: 4, Catalog: c}})
	assert.Equal(t, []batch.Job{{ID: 4, Catalog: c}}, jobs)
}
