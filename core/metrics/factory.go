package metrics

import "github.com/kherve/classplan/core/factory"

var sinkRegistry = factory.NewRegistry[SolveSink]()

// RegisterSolveSink adds a sink factory identified by name. Sinks under
// infra/metrics register themselves in their init functions.
func RegisterSolveSink(name string, f factory.Factory[SolveSink]) error {
	return sinkRegistry.Register(name, f)
}

// NewSolveSink creates a SolveSink from the configured modules. No modules
// yields a NopSink; several are combined into a MultiSink.
func NewSolveSink(cfgs []factory.ModuleConfig) (SolveSink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]SolveSink, len(cfgs))
	for i, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	return NewMultiSink(sinks...), nil
}
