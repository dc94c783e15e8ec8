// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Category is one of the six fixed semantic buckets task results are
// grouped under.
type Category string

const (
	CategoryBiodiversity         Category = "biodiversity"
	CategoryEnvironmental        Category = "environmental"
	CategoryPhysicalOceanography Category = "physical_oceanography"
	CategoryBiogeochemistry      Category = "biogeochemistry"
	CategoryHumanActivities      Category = "human_activities"
	CategoryConservation         Category = "conservation"
)

// Categories returns all categories in their fixed presentation order.
func Categories() []Category {
	return []Category{
		CategoryBiodiversity,
		CategoryEnvironmental,
		CategoryPhysicalOceanography,
		CategoryBiogeochemistry,
		CategoryHumanActivities,
		CategoryConservation,
	}
}
