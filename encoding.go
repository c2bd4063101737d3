package smallvec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the live elements as a JSON array.
func (v *SmallVec[T, A]) MarshalJSON() ([]byte, error) {
	s := v.AsSlice()
	if s == nil {
		s = []T{}
	}
	return json.Marshal(s)
}

// UnmarshalJSON replaces the contents of the vector with the elements of a
// JSON array. The vector is sized for the whole array before the first
// element is decoded. JSON null leaves the vector empty. If any element
// fails to decode the vector is left as it was.
func (v *SmallVec[T, A]) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("smallvec: %w", err)
	}
	return v.decode(len(items), func(i int, x *T) error {
		return json.Unmarshal(items[i], x)
	})
}

// MarshalYAML encodes the live elements as a YAML sequence.
func (v *SmallVec[T, A]) MarshalYAML() (any, error) {
	s := v.AsSlice()
	if s == nil {
		s = []T{}
	}
	return s, nil
}

// UnmarshalYAML replaces the contents of the vector with the items of a
// YAML sequence, sizing the vector for all of them first. A null node
// leaves the vector empty. If any item fails to decode the vector is left
// as it was.
func (v *SmallVec[T, A]) UnmarshalYAML(node *yaml.Node) error {
	switch {
	case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null":
		v.Clear()
		return nil
	case node.Kind != yaml.SequenceNode:
		return fmt.Errorf("smallvec: line %d: cannot decode %s into a sequence", node.Line, node.ShortTag())
	}
	return v.decode(len(node.Content), func(i int, x *T) error {
		return node.Content[i].Decode(x)
	})
}

// decode builds n elements with elem into a fresh vector and, only once all
// of them succeed, drops v's contents and takes the new vector's place.
func (v *SmallVec[T, A]) decode(n int, elem func(i int, x *T) error) error {
	var next SmallVec[T, A]
	next.Reserve(n)
	for i := range n {
		var x T
		if err := elem(i, &x); err != nil {
			next.Release()
			return fmt.Errorf("smallvec: element %d: %w", i, err)
		}
		next.Push(x)
	}
	v.Release()
	*v = next
	return nil
}
