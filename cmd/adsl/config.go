package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/adsl"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// settings is a flat key/value configuration. Nested YAML mappings are
// flattened to dotted keys, e.g. "tracelevel.adsl".
type settings map[string]string

var _ schuko.Configuration = settings{}

// loadSettings reads path, if non-empty, on top of the defaults.
func loadSettings(path string) (settings, error) {
	s := settings{}
	s.InitDefaults()
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	var tree map[string]interface{}
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("parsing configuration %s: %w", path, err)
	}
	s.merge("", tree)
	return s, nil
}

func (s settings) merge(prefix string, tree map[string]interface{}) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]interface{}); ok {
			s.merge(key, sub)
			continue
		}
		s[key] = fmt.Sprintf("%v", v)
	}
}

// InitDefaults sets up Go logging at level Error.
func (s settings) InitDefaults() {
	s["tracing.adapter"] = "go"
	s["tracelevel.root"] = "Error"
	s["tracelevel.adsl"] = "Error"
}

// Set overrides the value for key.
func (s settings) Set(key, value string) {
	s[key] = value
}

func (s settings) IsSet(key string) bool {
	_, ok := s[key]
	return ok
}

func (s settings) GetString(key string) string {
	return s[key]
}

func (s settings) GetInt(key string) int {
	n, _ := strconv.Atoi(s[key])
	return n
}

func (s settings) GetBool(key string) bool {
	b, _ := strconv.ParseBool(s[key])
	return b
}

func (s settings) IsInteractive() bool {
	return term.IsTerminal(0)
}

// setupTracing installs trace2go as the tracer factory, configured by conf.
func setupTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gtrace.CoreTracer = tracing.Select("adsl")
	adsl.T().Debugf("tracing configured, adapter %q", conf.GetString("tracing.adapter"))
	return nil
}
