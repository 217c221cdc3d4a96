package partition_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowsched/catalog"
	"github.com/katalvlaran/flowsched/partition"
	"github.com/katalvlaran/flowsched/search"
)

func sampleValves(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewGraphCatalog([]catalog.Location{
		{Name: "AA", Value: 0, Tunnels: []string{"DD", "II", "BB"}},
		{Name: "BB", Value: 13, Tunnels: []string{"CC", "AA"}},
		{Name: "CC", Value: 2, Tunnels: []string{"DD", "BB"}},
		{Name: "DD", Value: 20, Tunnels: []string{"CC", "AA", "EE"}},
		{Name: "EE", Value: 3, Tunnels: []string{"FF", "DD"}},
		{Name: "FF", Value: 0, Tunnels: []string{"EE", "GG"}},
		{Name: "GG", Value: 0, Tunnels: []string{"FF", "HH"}},
		{Name: "HH", Value: 22, Tunnels: []string{"GG"}},
		{Name: "II", Value: 0, Tunnels: []string{"AA", "JJ"}},
		{Name: "JJ", Value: 21, Tunnels: []string{"II"}},
	}, "AA")
	require.NoError(t, err)

	return c
}

func lineValves(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewGraphCatalog([]catalog.Location{
		{Name: "P0", Value: 10, Tunnels: []string{"P1"}},
		{Name: "P1", Value: 20, Tunnels: []string{"P0", "P2"}},
		{Name: "P2", Value: 5, Tunnels: []string{"P1", "P3"}},
		{Name: "P3", Value: 1, Tunnels: []string{"P2"}},
	}, "P0")
	require.NoError(t, err)

	return c
}

func randomValves(t testing.TB, rng *rand.Rand) *catalog.Catalog {
	t.Helper()
	n := 1 + rng.IntN(6)
	values := []int64{0, 1, 2, 5, 9}
	locs := make([]catalog.Location, n)
	for i := range locs {
		locs[i] = catalog.Location{Name: fmt.Sprintf("L%d", i), Value: values[rng.IntN(len(values))]}
	}
	for i := 1; i < n; i++ {
		j := rng.IntN(i)
		locs[i].Tunnels = append(locs[i].Tunnels, locs[j].Name)
		locs[j].Tunnels = append(locs[j].Tunnels, locs[i].Name)
	}
	c, err := catalog.NewGraphCatalog(locs, locs[0].Name)
	require.NoError(t, err)

	return c
}

// PartitionSuite covers the two-agent combiner on fixed scenarios.
type PartitionSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *PartitionSuite) SetupTest() { s.ctx = context.Background() }

func (s *PartitionSuite) TestSampleCave() {
	c := sampleValves(s.T())
	got, err := partition.BestPartitioned(s.ctx, c, 26)
	s.Require().NoError(err)
	s.Equal(int64(1707), got)

	byMask, err := partition.BestByMask(c, 26)
	s.Require().NoError(err)
	s.Equal(int64(1707), partition.CombineDisjoint(byMask))
}

func (s *PartitionSuite) TestLineByHorizon() {
	c := lineValves(s.T())
	want := []int64{0, 0, 10, 40, 70, 105, 141, 177, 213, 249, 285, 321}
	for h, w := range want {
		got, err := partition.BestPartitioned(s.ctx, c, h, partition.WithWorkers(2))
		s.Require().NoError(err)
		s.Equal(w, got, "horizon %d", h)
	}
}

// TestMatchesFullEnumeration evaluates every subset, both labelings, and
// compares with the half enumeration.
func (s *PartitionSuite) TestMatchesFullEnumeration() {
	c := lineValves(s.T())
	init := search.InitialState(c)
	full := c.All()
	var want int64
	for sub := catalog.Set(0); sub <= full; sub++ {
		a, err := search.Search(c, init, 10, search.WithRestrict(sub))
		s.Require().NoError(err)
		b, err := search.Search(c, init, 10, search.WithRestrict(full&^sub))
		s.Require().NoError(err)
		s.Equal(a+b, b+a)
		want = max(want, a+b)
	}
	got, err := partition.BestPartitioned(s.ctx, c, 10)
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *PartitionSuite) TestWorkerCountDoesNotMatter() {
	c := sampleValves(s.T())
	one, err := partition.BestPartitioned(s.ctx, c, 20, partition.WithWorkers(1))
	s.Require().NoError(err)
	for _, w := range []int{0, 2, 3, 8, 64} {
		got, err := partition.BestPartitioned(s.ctx, c, 20, partition.WithWorkers(w))
		s.Require().NoError(err)
		s.Equal(one, got, "workers=%d", w)
	}
}

func (s *PartitionSuite) TestForwardsSearchOptions() {
	c := lineValves(s.T())
	got, err := partition.BestPartitioned(s.ctx, c, 10,
		partition.WithSearchOptions(search.WithoutDedup(), search.WithoutBound()))
	s.Require().NoError(err)
	s.Equal(int64(285), got)
}

func (s *PartitionSuite) TestLogsAtDebug() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := partition.BestPartitioned(s.ctx, lineValves(s.T()), 10,
		partition.WithLogger(logger), partition.WithWorkers(1))
	s.Require().NoError(err)
	s.Contains(buf.String(), "partition start")
	s.Contains(buf.String(), "partition done")
	s.Contains(buf.String(), "best=285")
}

func TestPartitionSuite(t *testing.T) {
	suite.Run(t, new(PartitionSuite))
}

func TestBestPartitioned_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := partition.BestPartitioned(ctx, nil, 10)
	assert.ErrorIs(t, err, partition.ErrNilCatalog)

	_, err = partition.BestPartitioned(ctx, lineValves(t), 10, partition.WithWorkers(-1))
	assert.ErrorIs(t, err, partition.ErrOptionViolation)

	_, err = partition.BestPartitioned(ctx, lineValves(t), -1)
	assert.ErrorIs(t, err, search.ErrNegativeHorizon)

	star := []catalog.Location{{Name: "hub"}}
	for i := 0; i <= partition.MaxUniverse; i++ {
		name := fmt.Sprintf("v%02d", i)
		star[0].Tunnels = append(star[0].Tunnels, name)
		star = append(star, catalog.Location{Name: name, Value: 1, Tunnels: []string{"hub"}})
	}
	big, err := catalog.NewGraphCatalog(star, "hub")
	require.NoError(t, err)
	_, err = partition.BestPartitioned(ctx, big, 5)
	assert.ErrorIs(t, err, partition.ErrUniverseTooLarge)

	doubling, err := catalog.NewBuildCatalog(catalog.BuildSpec{
		Kinds:     []string{"ore"},
		Target:    "ore",
		Producers: []catalog.ProducerSpec{{Name: "drill", Cost: map[string]int64{"ore": 2}, Effect: map[string]int64{"ore": 1}}},
	})
	require.NoError(t, err)
	v, err := partition.BestPartitioned(ctx, doubling, 24)
	assert.ErrorIs(t, err, partition.ErrNotValve)
	assert.Zero(t, v)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = partition.BestPartitioned(cancelled, sampleValves(t), 26)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBestByMask_Errors(t *testing.T) {
	_, err := partition.BestByMask(nil, 10)
	assert.ErrorIs(t, err, partition.ErrNilCatalog)

	build, err := catalog.NewBuildCatalog(catalog.BuildSpec{Kinds: []string{"ore"}, Target: "ore"})
	require.NoError(t, err)
	_, err = partition.BestByMask(build, 10)
	assert.ErrorIs(t, err, partition.ErrNotValve)
}

func TestCombineDisjoint(t *testing.T) {
	assert.Equal(t, int64(0), partition.CombineDisjoint(nil))
	m := map[catalog.Set]int64{
		0:     3,
		0b001: 10,
		0b011: 25,
		0b110: 30,
		0b100: 8,
	}
	// {1,2}+{0} = 40 beats {0,1}+{2} = 33 and {}+{1,2} = 33
	assert.Equal(t, int64(40), partition.CombineDisjoint(m))
	assert.Equal(t, int64(6), partition.CombineDisjoint(map[catalog.Set]int64{0: 3}))
}

// TestProperty_ByMaskAgreesWithPartition on random connected graphs.
func TestProperty_ByMaskAgreesWithPartition(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 16))
	for trial := 0; trial < 300; trial++ {
		c := randomValves(t, rng)
		h := rng.IntN(9)
		p, err := partition.BestPartitioned(context.Background(), c, h, partition.WithWorkers(1+trial%4))
		require.NoError(t, err)
		m, err := partition.BestByMask(c, h)
		require.NoError(t, err)
		require.Equal(t, p, partition.CombineDisjoint(m), "trial %d horizon %d", trial, h)
	}
}
