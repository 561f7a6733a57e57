package http

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// pathUUID binds a uuid path parameter. A malformed id is a ValueIsInvalid error.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}

// listParams are the query parameters shared by the filtered list views.
type listParams struct {
	Search *string
	Status *string
}

func bindListParams(ctx echo.Context) (listParams, error) {
	var p listParams
	if err := runtime.BindQueryParameter("form", true, false, "q", ctx.QueryParams(), &p.Search); err != nil {
		return listParams{}, errs.NewValueIsInvalidErrorWithCause("q", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &p.Status); err != nil {
		return listParams{}, errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	return p, nil
}

func (p listParams) search() string {
	if p.Search == nil {
		return ""
	}
	return *p.Search
}

func (p listParams) status() string {
	if p.Status == nil {
		return ""
	}
	return *p.Status
}
