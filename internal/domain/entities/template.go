package entities

// Template is a complete, ordered scaffolding recipe.
//
// Preparation runs before the dependency table is flushed into the manifest (stripping
// the manifest's comments must happen here, otherwise comments rendered for the new
// declarations would be stripped too). Steps run after the flush, in order.
type Template struct {
	Name          string
	Description   string
	RequiredRange string
	ManifestPath  string
	Dependencies  *DependencyTable
	Preparation   []PipelineStep
	Steps         []PipelineStep
	FollowUps     []string // printed verbatim in the summary; "%s" is replaced by the app name
}
