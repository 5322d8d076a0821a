package page

import "time"

// Diagram returns the fixed structural diagram layout: a core marker,
// two counter-rotating rings and six active nodes linked to the core,
// clockwise from the top. Each call builds fresh slices.
func Diagram() DiagramLayout {
	center := Point{X: 50, Y: 50}

	nodes := []NodeSpec{
		{Label: "N-01", Active: true, At: Point{X: 50, Y: 10}},
		{Label: "N-02", Active: true, At: Point{X: 85, Y: 30}},
		{Label: "N-03", Active: true, At: Point{X: 85, Y: 70}},
		{Label: "N-04", Active: true, At: Point{X: 50, Y: 90}},
		{Label: "N-05", Active: true, At: Point{X: 15, Y: 70}},
		{Label: "N-06", Active: true, At: Point{X: 15, Y: 30}},
	}

	links := make([]Link, 0, len(nodes))
	for _, n := range nodes {
		links = append(links, Link{From: center, To: n.At})
	}

	return DiagramLayout{
		Core: Core{Symbol: "Ru", Label: "CORE", At: center},
		Rings: []Ring{
			{Diameter: 64, Period: 10 * time.Second, Tone: ToneSecondary},
			{Diameter: 80, Period: 15 * time.Second, Reverse: true, Tone: ToneAccent},
		},
		Links: links,
		Nodes: nodes,
	}
}
