package search_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowsched/catalog"
	"github.com/katalvlaran/flowsched/resource"
	"github.com/katalvlaran/flowsched/search"
)

// robotCatalog builds the four-robot blueprint catalog (target geode).
func robotCatalog(t testing.TB, ore, clay, obsOre, obsClay, geoOre, geoObs int64) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewBuildCatalog(catalog.BuildSpec{
		Kinds:  []string{"ore", "clay", "obsidian", "geode"},
		Target: "geode",
		Producers: []catalog.ProducerSpec{
			{Name: "ore", Cost: map[string]int64{"ore": ore}, Effect: map[string]int64{"ore": 1}},
			{Name: "clay", Cost: map[string]int64{"ore": clay}, Effect: map[string]int64{"clay": 1}},
			{Name: "obsidian", Cost: map[string]int64{"ore": obsOre, "clay": obsClay}, Effect: map[string]int64{"obsidian": 1}},
			{Name: "geode", Cost: map[string]int64{"ore": geoOre, "obsidian": geoObs}, Effect: map[string]int64{"geode": 1}},
		},
	})
	require.NoError(t, err)

	return c
}

func blueprintOne(t testing.TB) *catalog.Catalog { return robotCatalog(t, 4, 2, 3, 14, 2, 7) }
func blueprintTwo(t testing.TB) *catalog.Catalog { return robotCatalog(t, 2, 3, 3, 8, 3, 12) }

// doublingCatalog: one producer costing 2 ore that adds 1 ore per tick.
func doublingCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewBuildCatalog(catalog.BuildSpec{
		Kinds:  []string{"ore"},
		Target: "ore",
		Producers: []catalog.ProducerSpec{
			{Name: "miner", Cost: map[string]int64{"ore": 2}, Effect: map[string]int64{"ore": 1}},
		},
	})
	require.NoError(t, err)

	return c
}

// sampleValves is the ten-location sample cave, start AA.
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

// lineValves is P0 - P1 - P2 - P3 with values 10, 20, 5, 1, start P0.
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

// randomBuild draws a small build catalog: 1-3 kinds, 0-3 producers,
// costs in [0,4], effects in {0,1,2} and a 0/1 base rate per kind.
func randomBuild(t testing.TB, rng *rand.Rand) *catalog.Catalog {
	t.Helper()
	nk := 1 + rng.IntN(3)
	n := rng.IntN(4)
	kinds := make([]string, nk)
	base := make(map[string]int64, nk)
	for k := range kinds {
		kinds[k] = fmt.Sprintf("k%d", k)
		base[kinds[k]] = int64(rng.IntN(2))
	}
	effects := []int64{0, 0, 1, 2}
	spec := catalog.BuildSpec{Kinds: kinds, Target: kinds[rng.IntN(nk)], Base: base}
	for i := 0; i < n; i++ {
		ps := catalog.ProducerSpec{
			Name:   fmt.Sprintf("p%d", i),
			Cost:   make(map[string]int64, nk),
			Effect: make(map[string]int64, nk),
		}
		for _, k := range kinds {
			ps.Cost[k] = int64(rng.IntN(5))
			ps.Effect[k] = effects[rng.IntN(len(effects))]
		}
		spec.Producers = append(spec.Producers, ps)
	}
	c, err := catalog.NewBuildCatalog(spec)
	require.NoError(t, err)

	return c
}

// bruteBuild returns the exact optimum from (stock, rate) at time tm by
// trying every wait/activate sequence.
func bruteBuild(c *catalog.Catalog, horizon, tm int, stock, rate resource.Vector) int64 {
	if tm == horizon {
		return stock.At(c.Target())
	}
	best := bruteBuild(c, horizon, tm+1, stock.Add(rate), rate)
	for _, p := range c.Producers() {
		if !stock.CanAfford(p.Cost) {
			continue
		}
		v := bruteBuild(c, horizon, tm+1, stock.Sub(p.Cost).Add(rate), rate.Add(p.Effect))
		if v > best {
			best = v
		}
	}

	return best
}

// randomValves draws a connected graph of 1-6 locations with values in
// {0,1,2,5,9}, a random spanning tree plus up to three extra edges.
func randomValves(t testing.TB, rng *rand.Rand) *catalog.Catalog {
	t.Helper()
	n := 1 + rng.IntN(6)
	values := []int64{0, 1, 2, 5, 9}
	locs := make([]catalog.Location, n)
	for i := range locs {
		locs[i] = catalog.Location{Name: fmt.Sprintf("L%d", i), Value: values[rng.IntN(len(values))]}
	}
	connect := func(a, b int) {
		locs[a].Tunnels = append(locs[a].Tunnels, locs[b].Name)
		locs[b].Tunnels = append(locs[b].Tunnels, locs[a].Name)
	}
	for i := 1; i < n; i++ {
		connect(i, rng.IntN(i))
	}
	for extra := rng.IntN(4); extra > 0; extra-- {
		if a, b := rng.IntN(n), rng.IntN(n); a != b {
			connect(a, b)
		}
	}
	c, err := catalog.NewGraphCatalog(locs, locs[0].Name)
	require.NoError(t, err)

	return c
}

// bruteValves returns the exact single-agent optimum over producers in allowed.
func bruteValves(c *catalog.Catalog, horizon int, allowed catalog.Set) int64 {
	return bruteValvesFrom(c, horizon, allowed, search.InitialState(c))
}

// bruteValvesFrom enumerates every opening order from st.
func bruteValvesFrom(c *catalog.Catalog, horizon int, allowed catalog.Set, st search.State) int64 {
	best := st.Stock[0] + st.Rate[0]*int64(horizon-st.Time)
	(allowed &^ st.Opened).Each(func(j int) {
		lag, ok := c.Lag(st.Location, j)
		if !ok || st.Time+lag+1 > horizon {
			return
		}
		next := search.State{
			Time:     st.Time + lag + 1,
			Stock:    st.Stock.With(0, st.Stock[0]+st.Rate[0]*int64(lag+1)),
			Rate:     st.Rate.With(0, st.Rate[0]+c.Producer(j).Value),
			Opened:   st.Opened.With(j),
			Location: j,
		}
		if v := bruteValvesFrom(c, horizon, allowed, next); v > best {
			best = v
		}
	})

	return best
}

// mustSearch runs Search from the initial state and fails on error.
func mustSearch(t testing.TB, c *catalog.Catalog, horizon int, opts ...search.Option) int64 {
	t.Helper()
	v, err := search.Search(c, search.InitialState(c), horizon, opts...)
	require.NoError(t, err)

	return v
}
