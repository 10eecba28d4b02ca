package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"metrocontratos/cmd/internal/contract"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UtilService interface {
	GetCompanyByCNPJ(ctx context.Context, cnpj string) (*contract.CompanyResponse, apierror.ErrorResponse)
	ContractTypes() []*contract.ContractTypeResponse
}

type DefaultUtilRoute struct {
	UtilService UtilService
}

func NewUtilRoute(utilService UtilService) *DefaultUtilRoute {
	return &DefaultUtilRoute{UtilService: utilService}
}

func (u *DefaultUtilRoute) GetCompany(c echo.Context) error {
	company, apierr := u.UtilService.GetCompanyByCNPJ(c.Request().Context(), c.Param("cnpj"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

func (u *DefaultUtilRoute) GetContractTypes(c echo.Context) error {
	resp := echo.Map{"types": u.UtilService.ContractTypes()}
	return c.JSON(http.StatusOK, &resp)
}

// Health is used by the container healthcheck.
func (u *DefaultUtilRoute) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &contract.HealthResponse{
		Status: "OK",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

func parseID(c echo.Context) (int64, *apierror.APIError) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.InvalidIDError
	}
	return id, nil
}
