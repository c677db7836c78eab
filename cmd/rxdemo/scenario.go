package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of operations against a string subject.
type Scenario struct {
	Name           string `yaml:"name"`
	ReplayTerminal bool   `yaml:"replayTerminal"`
	Steps          []Step `yaml:"steps"`
}

// Step holds exactly one operation.
type Step struct {
	Subscribe string  `yaml:"subscribe,omitempty"`
	Dispose   string  `yaml:"dispose,omitempty"`
	Next      *string `yaml:"next,omitempty"`
	Error     string  `yaml:"error,omitempty"`
	Complete  bool    `yaml:"complete,omitempty"`
}

func (s Step) operations() int {
	n := 0
	for _, set := range []bool{s.Subscribe != "", s.Dispose != "", s.Next != nil, s.Error != "", s.Complete} {
		if set {
			n++
		}
	}
	return n
}

func (s Step) String() string {
	switch {
	case s.Subscribe != "":
		return "subscribe " + s.Subscribe
	case s.Dispose != "":
		return "dispose " + s.Dispose
	case s.Next != nil:
		return fmt.Sprintf("next %q", *s.Next)
	case s.Error != "":
		return fmt.Sprintf("error %q", s.Error)
	case s.Complete:
		return "complete"
	default:
		return "empty step"
	}
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read scenario %s", path)
	}
	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid scenario %s", path)
	}
	return scenario, nil
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, errors.Wrap(err, "unable to decode scenario")
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// Validate reports every malformed step at once.
func (s *Scenario) Validate() error {
	var result *multierror.Error
	if len(s.Steps) == 0 {
		result = multierror.Append(result, errors.New("scenario has no steps"))
	}

	subscribed := make(map[string]bool)
	for i, step := range s.Steps {
		switch n := step.operations(); {
		case n == 0:
			result = multierror.Append(result, errors.Errorf("step %d: no operation", i+1))
			continue
		case n > 1:
			result = multierror.Append(result, errors.Errorf("step %d: %d operations, expected one", i+1, n))
			continue
		}

		switch {
		case step.Subscribe != "":
			if subscribed[step.Subscribe] {
				result = multierror.Append(result, errors.Errorf("step %d: observer %q subscribed twice", i+1, step.Subscribe))
			}
			subscribed[step.Subscribe] = true
		case step.Dispose != "":
			if !subscribed[step.Dispose] {
				result = multierror.Append(result, errors.Errorf("step %d: observer %q is not subscribed", i+1, step.Dispose))
			}
		}
	}
	return result.ErrorOrNil()
}
