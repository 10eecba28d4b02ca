package handler

import (
	"context"
	"net/http"

	"metrocontratos/cmd/internal/contract"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ClientService interface {
	ListClients(ctx context.Context, search string) ([]*contract.ClientResponse, apierror.ErrorResponse)
	GetClient(ctx context.Context, id int64) (*contract.ClientResponse, apierror.ErrorResponse)
	CreateClient(ctx context.Context, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse)
	UpdateClient(ctx context.Context, id int64, req *contract.UpdateClientRequest) (*contract.ClientResponse, apierror.ErrorResponse)
	DeleteClient(ctx context.Context, id int64) apierror.ErrorResponse
}

type DefaultClientRoute struct {
	ClientService ClientService
}

func NewClientRoute(clientService ClientService) *DefaultClientRoute {
	return &DefaultClientRoute{ClientService: clientService}
}

func (r *DefaultClientRoute) GetClients(c echo.Context) error {
	clients, err := r.ClientService.ListClients(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"clients": clients}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultClientRoute) GetClient(c echo.Context) error {
	id, ierr := parseID(c)
	if ierr != nil {
		return c.JSON(ierr.Code(), ierr)
	}

	client, apierr := r.ClientService.GetClient(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, client)
}

func (r *DefaultClientRoute) CreateClient(c echo.Context) error {
	var req contract.ClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	client, apierr := r.ClientService.CreateClient(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, client)
}

func (r *DefaultClientRoute) UpdateClient(c echo.Context) error {
	id, ierr := parseID(c)
	if ierr != nil {
		return c.JSON(ierr.Code(), ierr)
	}

	var req contract.UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	client, apierr := r.ClientService.UpdateClient(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, client)
}

func (r *DefaultClientRoute) DeleteClient(c echo.Context) error {
	id, ierr := parseID(c)
	if ierr != nil {
		return c.JSON(ierr.Code(), ierr)
	}

	if apierr := r.ClientService.DeleteClient(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
