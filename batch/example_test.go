package batch_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/flowsched/batch"
	"github.com/katalvlaran/flowsched/parse"
)

func ExampleEvaluate() {
	bps, err := parse.Blueprints(sampleBlueprints)
	if err != nil {
		panic(err)
	}
	res, err := batch.Evaluate(context.Background(), batch.FromBlueprints(bps), 24, batch.WithWorkers(2))
	if err != nil {
		panic(err)
	}
	for _, r := range res {
		fmt.Printf("blueprint %d: %d\n", r.ID, r.Value)
	}
	fmt.Println("quality:", batch.QualitySum(res))
	// Output:
	// blueprint 1: 9
	// blueprint 2: 12
	// quality: 33
}
