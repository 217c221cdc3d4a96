// Package partition extends the single-agent search to two agents that
// share one catalog and split its producers.
//
// BestPartitioned enumerates one subset per complementary pair, searches
// each half independently and max-reduces the pair sums across a pool of
// workers (golang.org/x/sync/errgroup). Each subset evaluation is a pure
// function of the read-only catalog, so workers share nothing mutable.
//
// BestByMask and CombineDisjoint are the alternative for valve catalogs:
// one unpruned exploration records the best value per opened set, and the
// answer is the best pair of disjoint sets. Both approaches agree.
package partition
