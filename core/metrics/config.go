package metrics

import "github.com/kherve/classplan/core/factory"

// Config lists the sinks to instantiate for a run.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks" yaml:"sinks"`
}
