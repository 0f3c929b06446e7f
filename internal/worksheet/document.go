package worksheet

import (
	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Document is the file form of a worksheet (YAML or JSON).
type Document struct {
	Name    string               `json:"name,omitempty"`
	Walls   []estimation.Surface `json:"walls"`
	Doors   []estimation.Surface `json:"doors,omitempty"`
	Windows []estimation.Surface `json:"windows,omitempty"`
	Inputs  Inputs               `json:"inputs"`
}

// Parse decodes a YAML or JSON document into a new worksheet.
func Parse(data []byte) (*Worksheet, error) {
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode worksheet")
	}
	if len(doc.Walls) == 0 {
		return nil, errors.New("worksheet must contain at least one wall")
	}
	return doc.Worksheet()
}

// Worksheet builds a worksheet from the document. Missing lists get the single empty row a
// new worksheet starts with.
func (d Document) Worksheet() (*Worksheet, error) {
	w := New(d.Name)
	var err error
	if w.Walls, err = NewSurfaceListFrom(d.Walls); err != nil {
		return nil, errors.Wrap(err, "walls")
	}
	if w.Doors, err = NewSurfaceListFrom(d.Doors); err != nil {
		return nil, errors.Wrap(err, "doors")
	}
	if w.Windows, err = NewSurfaceListFrom(d.Windows); err != nil {
		return nil, errors.Wrap(err, "windows")
	}
	w.Inputs = d.Inputs
	return w, nil
}

// Document returns the file form of w.
func (w *Worksheet) Document() Document {
	return Document{
		Name:    w.Name,
		Walls:   w.Walls.Items(),
		Doors:   w.Doors.Items(),
		Windows: w.Windows.Items(),
		Inputs:  w.Inputs.clone(),
	}
}

// Marshal encodes w as YAML.
func (w *Worksheet) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(w.Document())
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode worksheet")
	}
	return data, nil
}
