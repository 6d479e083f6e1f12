package app

import (
	"github.com/nfrund/voidinbox/internal/metrics"
	"github.com/nfrund/voidinbox/internal/modules/void"
	"github.com/nfrund/voidinbox/internal/rendering"
	"github.com/nfrund/voidinbox/internal/replies"
	"github.com/nfrund/voidinbox/internal/responder"
)

// Dependencies holds the core services the application's modules need.
type Dependencies struct {
	Renderer rendering.Renderer
	Pool     *replies.Pool
	Metrics  *metrics.Metrics
	// ResponderOptions are forwarded to the Void's responder.
	ResponderOptions []responder.Option
}

// voidDeps creates the dependency struct for the void module.
func voidDeps(deps Dependencies) void.Dependencies {
	d := void.Dependencies{
		Renderer: deps.Renderer,
		Pool:     deps.Pool,
		Options:  deps.ResponderOptions,
	}
	if deps.Metrics != nil {
		d.Observer = deps.Metrics
	}
	return d
}
