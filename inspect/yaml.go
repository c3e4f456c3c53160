package inspect

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Node is the YAML rendering of a single tree node.
type Node struct {
	Index   int    `yaml:"index"`
	Value   string `yaml:"value,omitempty"`
	Pending string `yaml:"pending,omitempty"`
	Padding bool   `yaml:"padding,omitempty"`
}

// Document is the YAML rendering of a tree, root layer first.
type Document struct {
	Size   int      `yaml:"size"`
	Cap    int      `yaml:"cap"`
	Layers [][]Node `yaml:"layers"`
}

// DocumentOf collects the layers of tree.
func DocumentOf(tree Layered) Document {
	s := shapeOf(tree)
	doc := Document{Size: s.size, Cap: s.cap}
	for d := 0; s.cap > 0 && d <= s.height; d++ {
		from, to := s.layer(d)
		layer := make([]Node, 0, to-from)
		for i := from; i < to; i++ {
			value, pending := tree.Label(i)
			layer = append(layer, Node{
				Index:   i,
				Value:   value,
				Pending: pending,
				Padding: s.isPadding(i, d),
			})
		}
		doc.Layers = append(doc.Layers, layer)
	}
	return doc
}

// ToYAML outputs the layers of tree as a YAML document.
func ToYAML(tree Layered, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(DocumentOf(tree)); err != nil {
		tracer().Errorf("inspect: encoding YAML: %v", err)
		return err
	}
	return enc.Close()
}
