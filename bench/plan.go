package bench

import (
	"github.com/weiihann/resizebench/imageset"
	"github.com/weiihann/resizebench/technique"
)

// heavyTechniques are too expensive to run against the large sample; the
// pair is planned at zero runs and reported as skipped.
var heavyTechniques = map[string]bool{
	"pipeline":       true,
	"pipeline-gamma": true,
}

// PlanRuns returns the run count for a pair: the default for everything
// except the large sample against the heavy techniques, which get zero.
func PlanRuns(runs int, sample imageset.Sample, tech technique.Technique) int {
	if sample.Name == imageset.LargeName && heavyTechniques[tech.Name] {
		return 0
	}

	return runs
}
