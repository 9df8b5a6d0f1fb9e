package profiler

const schemaURL = "https://www.speedscope.app/file-format-schema.json"

type document struct {
	Schema   string    `json:"$schema"`
	Shared   shared    `json:"shared"`
	Profiles []profile `json:"profiles"`
	Exporter string    `json:"exporter,omitempty"`
	Name     string    `json:"name,omitempty"`
}

type shared struct {
	Frames []frameName `json:"frames"`
}

type frameName struct {
	Name string `json:"name"`
}

type profile struct {
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	StartValue int64   `json:"startValue"`
	EndValue   int64   `json:"endValue"`
	Events     []event `json:"events"`
}

type event struct {
	Type  string `json:"type"` // "O" open, "C" close
	At    int64  `json:"at"`
	Frame int    `json:"frame"`
}

// build converts raw edges into balanced speedscope events in
// microseconds from the first edge. Closes whose open fell out of the ring
// are dropped; spans still open at the end are closed at the last time.
func build(edges []edge, spanNames []string) (*document, error) {
	if len(edges) == 0 {
		return nil, ErrNoSpans
	}
	base := edges[0].at
	events := make([]event, 0, len(edges))
	var open []int
	last := int64(0)

	for _, e := range edges {
		at := max((e.at-base)/1000, last)
		if e.open {
			open = append(open, e.name)
			events = append(events, event{Type: "O", At: at, Frame: e.name})
		} else {
			if len(open) == 0 || open[len(open)-1] != e.name {
				continue
			}
			open = open[:len(open)-1]
			events = append(events, event{Type: "C", At: at, Frame: e.name})
		}
		last = at
	}
	for i := len(open) - 1; i >= 0; i-- {
		events = append(events, event{Type: "C", At: last, Frame: open[i]})
	}

	frames := make([]frameName, len(spanNames))
	for i, n := range spanNames {
		frames[i] = frameName{Name: n}
	}
	return &document{
		Schema: schemaURL,
		Shared: shared{Frames: frames},
		Profiles: []profile{{
			Type:     "evented",
			Name:     "render loop",
			Unit:     "microseconds",
			EndValue: last,
			Events:   events,
		}},
		Exporter: "pointpixel",
		Name:     "pointpixel capture",
	}, nil
}
