package dataset

// Built-in sample datasets, embedded as literals so examples and tests run
// without external files. Registered under fixed identifiers at package
// initialization.

const (
	// IrisMini is a 15-instance, 4-feature slice of the classic iris data,
	// five instances per class.
	IrisMini = "iris-mini"

	// HobbiesMini is a 12-document labeled text corpus across four topics.
	HobbiesMini = "hobbies-mini"
)

func init() {
	Register(IrisMini, loadIrisMini)
	Register(HobbiesMini, loadHobbiesMini)
}

func loadIrisMini() (*Dataset, error) {
	return New(
		[][]float64{
			{5.1, 3.5, 1.4, 0.2},
			{4.9, 3.0, 1.4, 0.2},
			{4.7, 3.2, 1.3, 0.2},
			{5.0, 3.6, 1.4, 0.2},
			{5.4, 3.9, 1.7, 0.4},
			{7.0, 3.2, 4.7, 1.4},
			{6.4, 3.2, 4.5, 1.5},
			{6.9, 3.1, 4.9, 1.5},
			{5.5, 2.3, 4.0, 1.3},
			{6.5, 2.8, 4.6, 1.5},
			{6.3, 3.3, 6.0, 2.5},
			{5.8, 2.7, 5.1, 1.9},
			{7.1, 3.0, 5.9, 2.1},
			{6.3, 2.9, 5.6, 1.8},
			{6.5, 3.0, 5.8, 2.2},
		},
		WithTarget([]float64{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2}),
		WithFeatureNames([]string{"sepal length", "sepal width", "petal length", "petal width"}),
		WithClassNames(map[float64]string{0: "setosa", 1: "versicolor", 2: "virginica"}),
	)
}

func loadHobbiesMini() (*Dataset, error) {
	return FromDocuments(
		[]string{
			"the novel opens with a long meditation on memory and loss",
			"her latest book is a sharp satire of publishing itself",
			"a sprawling fantasy trilogy with maps and invented languages",
			"the film leans on practical effects and long silent takes",
			"a restored print screens at the festival next week",
			"the director cut twenty minutes and the pacing improved",
			"sear the fish skin side down until it releases from the pan",
			"fold the dough gently so the layers keep their air",
			"a bright salsa of lime chile and charred corn",
			"the midfield pressed high and forced turnovers all night",
			"she set a personal best in the final hundred meters",
			"the climbing route follows a thin crack to the summit ridge",
		},
		WithTarget([]float64{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3}),
		WithClassNames(map[float64]string{0: "books", 1: "cinema", 2: "cooking", 3: "sports"}),
	)
}
