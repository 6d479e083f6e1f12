package app

import (
	"github.com/nfrund/voidinbox/internal/module"
	"github.com/nfrund/voidinbox/internal/modules/void"
)

// NewModules returns every enabled module, in boot order.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		void.New(voidDeps(deps)),
	}
}
