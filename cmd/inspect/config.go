package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/ownref/errors"
)

// fixture describes one owner payload and the narrowing steps to trace
// over it. Kind selects the owner: "text" wraps Text, "buffer" wraps
// Buffer, "record" boxes a small record, "shared" wraps a counted handle.
type fixture struct {
	Name   string   `toml:"name"`
	Kind   string   `toml:"kind"`
	Text   string   `toml:"text"`
	Values []int64  `toml:"values"`
	Tag    uint32   `toml:"tag"`
	X      uint16   `toml:"x"`
	Y      uint16   `toml:"y"`
	Z      uint16   `toml:"z"`
	Steps  []string `toml:"steps"`
}

type fixturesFile struct {
	Fixtures []fixture `toml:"fixture"`
}

// loadFixtures reads fixtures from path, or returns the built-in set when
// path is empty.
func loadFixtures(path string) ([]fixture, error) {
	if path == "" {
		return builtinFixtures(), nil
	}

	var f fixturesFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, errors.Wrap(errors.PhaseFixture, errors.KindInvalidData, err, "decode fixtures file")
	}
	if len(f.Fixtures) == 0 {
		return nil, errors.InvalidData(errors.PhaseFixture, nil, "no fixtures defined")
	}

	for i := range f.Fixtures {
		if err := validateFixture(f.Fixtures[i]); err != nil {
			return nil, err
		}
	}
	return f.Fixtures, nil
}

func validateFixture(fx fixture) error {
	if fx.Name == "" {
		return errors.InvalidData(errors.PhaseFixture, nil, "fixture without a name")
	}
	switch fx.Kind {
	case "text":
		if fx.Text == "" {
			return errors.InvalidData(errors.PhaseFixture, []string{fx.Name}, "text fixture needs a text payload")
		}
	case "buffer", "shared":
		if len(fx.Values) == 0 {
			return errors.InvalidData(errors.PhaseFixture, []string{fx.Name}, "fixture needs a values payload")
		}
	case "record":
		// the zero record is a valid payload
	default:
		return errors.InvalidData(errors.PhaseFixture, []string{fx.Name}, fmt.Sprintf("unknown fixture kind %q", fx.Kind))
	}
	return nil
}

func findFixture(fixtures []fixture, name string) (fixture, error) {
	for _, fx := range fixtures {
		if fx.Name == name {
			return fx, nil
		}
	}
	return fixture{}, errors.NotFound(errors.PhaseFixture, "fixture", name)
}

func describeFixture(fx fixture) string {
	switch fx.Kind {
	case "text":
		return fmt.Sprintf("text %q", fx.Text)
	case "buffer":
		return fmt.Sprintf("buffer %v", fx.Values)
	case "shared":
		return fmt.Sprintf("shared %v", fx.Values)
	case "record":
		return fmt.Sprintf("record{tag: %d, x: %d, y: %d, z: %d}", fx.Tag, fx.X, fx.Y, fx.Z)
	default:
		return fx.Kind
	}
}

// builtinFixtures is the default set traced when no fixtures file is given.
func builtinFixtures() []fixture {
	return []fixture{
		{Name: "point", Kind: "record", Tag: 1, X: 100, Y: 200, Z: 300, Steps: []string{"y"}},
		{Name: "numbers", Kind: "buffer", Values: []int64{1, 2, 3, 4, 5}, Steps: []string{"3"}},
		{Name: "greeting", Kind: "text", Text: "hello world", Steps: []string{"6:11"}},
		{Name: "chained", Kind: "text", Text: "hello world", Steps: []string{"1:6", "0:2"}},
		{Name: "shared", Kind: "shared", Values: []int64{1, 2, 3, 4}, Steps: []string{"0:2", "1:3", "2:4"}},
	}
}
