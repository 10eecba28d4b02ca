package handler

import (
	"context"
	"net/http"

	"metrocontratos/cmd/internal/contract"
	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CompanyService interface {
	ResolveCompanyProfile(ctx context.Context) entity.CompanyProfile
	PersistCompanyProfile(ctx context.Context, fields map[string]any) (*entity.CompanyProfile, apierror.ErrorResponse)
}

type DefaultCompanyRoute struct {
	CompanyService CompanyService
}

func NewCompanyRoute(companyService CompanyService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{CompanyService: companyService}
}

func (r *DefaultCompanyRoute) GetProfile(c echo.Context) error {
	profile := r.CompanyService.ResolveCompanyProfile(c.Request().Context())
	return c.JSON(http.StatusOK, &profile)
}

// UpdateProfile always answers with the success envelope, also on failure.
func (r *DefaultCompanyRoute) UpdateProfile(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, &contract.PersistResult{Error: apierror.MalformedJSONError.Message})
	}

	profile, apierr := r.CompanyService.PersistCompanyProfile(c.Request().Context(), fields)
	if apierr != nil {
		return c.JSON(apierr.Code(), &contract.PersistResult{Error: describe(apierr), Data: apierr})
	}
	return c.JSON(http.StatusOK, &contract.PersistResult{Success: true, Data: profile})
}

func describe(apierr apierror.ErrorResponse) string {
	switch e := apierr.(type) {
	case *apierror.APIError:
		return e.Message
	case *apierror.StructuredError:
		return "Invalid company configuration"
	default:
		return http.StatusText(apierr.Code())
	}
}
