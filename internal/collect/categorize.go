// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"strings"

	"github.com/pdiddy/marine-engine/pkg/types"
)

// categoryRule maps task-name keywords to one category. Rules are evaluated
// in order; the first rule with a matching keyword wins.
type categoryRule struct {
	keywords []string
	category types.Category
}

// categoryRules is the fixed classification policy. Names matching no rule
// fall into the environmental catch-all.
var categoryRules = []categoryRule{
	{[]string{"glodap", "socat", "carbon", "co2", "alkalinity"}, types.CategoryBiogeochemistry},
	{[]string{"fishing", "vessel", "traffic", "aquaculture"}, types.CategoryHumanActivities},
	{[]string{"coral", "reef_watch", "protected", "mpa"}, types.CategoryConservation},
	{[]string{"buoy", "argo", "float", "onc", "sensor", "observatory"}, types.CategoryPhysicalOceanography},
	{[]string{"obis", "gbif", "fishbase", "species", "occurrence", "biodiversity"}, types.CategoryBiodiversity},
	{[]string{"erddap", "sst", "satellite", "copernicus", "chlorophyll", "temperature"}, types.CategoryEnvironmental},
}

// Categorize maps a task name to its semantic category. It is a pure
// function: the same name always yields the same category.
func Categorize(name string) types.Category {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return types.CategoryEnvironmental
}
