package metrics

import (
	"fmt"

	"github.com/kherve/classplan/core/factory"
	coremetrics "github.com/kherve/classplan/core/metrics"
)

// init registers the builtin sinks so configuration can reference them by
// type name.
func init() {
	must := func(err error) {
		if err != nil {
			panic(fmt.Sprintf("metrics sink registration: %v", err))
		}
	}
	must(coremetrics.RegisterSolveSink("nop", func(map[string]any) (coremetrics.SolveSink, error) {
		return coremetrics.NopSink{}, nil
	}))
	must(coremetrics.RegisterSolveSink("prom", func(map[string]any) (coremetrics.SolveSink, error) {
		return NewPromSink()
	}))
	must(coremetrics.RegisterSolveSink("influx", func(conf map[string]any) (coremetrics.SolveSink, error) {
		var c struct {
			URL    string `json:"url"`
			Token  string `json:"token"`
			Org    string `json:"org"`
			Bucket string `json:"bucket"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.URL == "" {
			return nil, fmt.Errorf("influx sink: url is required")
		}
		return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
	}))
}
