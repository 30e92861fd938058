package invoice

import (
	"github.com/smallbiznis/quickinvoice/internal/invoice/render"
	"github.com/smallbiznis/quickinvoice/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewRenderer),
	fx.Provide(func(r *render.Renderer) service.Renderer { return r }),
	fx.Provide(service.New),
)
