package search

import (
	"github.com/katalvlaran/flowsched/catalog"
	"github.com/katalvlaran/flowsched/resource"
)

// State is one node of the search space.
//
// Build style uses Stock, Rate and Skip. Valve style keeps the released
// total in Stock[0], the current flow in Rate[0], the opened producers in
// Opened and the current node in Location.
type State struct {
	Time     int
	Stock    resource.Vector
	Rate     resource.Vector
	Opened   catalog.Set
	Location int
	Skip     catalog.Set
}

// InitialState returns the time-0 state for cat: empty stock, the catalog's
// base rate and, for valve catalogs, the start location.
func InitialState(cat *catalog.Catalog) State {
	st := State{Rate: cat.Base()}
	if cat.Style() == catalog.StyleValve {
		st.Location = cat.Start()
	}

	return st
}

// Terminal returns the value st reaches at horizon if nothing else is
// activated: target stock plus target rate for every remaining tick.
func Terminal(cat *catalog.Catalog, st State, horizon int) int64 {
	k := cat.Target()
	rem := int64(horizon - st.Time)

	return resource.SatAdd(st.Stock.At(k), resource.SatMul(st.Rate.At(k), rem))
}

// key is the time-independent identity used for deduplication.
type key struct {
	stock    resource.Vector
	rate     resource.Vector
	location int
	opened   catalog.Set
}

func keyOf(st State) key {
	return key{stock: st.Stock, rate: st.Rate, location: st.Location, opened: st.Opened}
}
