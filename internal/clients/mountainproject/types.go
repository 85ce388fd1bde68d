package mountainproject

// Route is one climbing route from a Mountain Project CSV export, enriched
// in place with the derived scenic loop fields after analysis.
type Route struct {
	Name      string  `csv:"Route"`
	Area      string  `csv:"Area"`
	Canyon    string  `csv:"Canyon"`
	Latitude  float64 `csv:"Latitude"`
	Longitude float64 `csv:"Longitude"`
	Rating    string  `csv:"Rating"`
	RouteType string  `csv:"Route Type"`
	Pitches   int     `csv:"Pitches"`
	AvgStars  float64 `csv:"Avg Stars"`

	// Derived fields, zero until the analyzer assigns them.
	PathPosition    float64 `csv:"Path_Position"`
	DistanceToRoad  float64 `csv:"Distance_to_Road"`
	ScenicLoopOrder int     `csv:"Scenic_Loop_Order"`
}
