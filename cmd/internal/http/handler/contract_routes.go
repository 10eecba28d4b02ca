package handler

import (
	"context"
	"fmt"
	"net/http"

	"metrocontratos/cmd/internal/contract"
	"metrocontratos/cmd/internal/document"
	"metrocontratos/cmd/internal/utils"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type ContractService interface {
	ListContracts(ctx context.Context, status, kind, clientID string) ([]*contract.ContractResponse, apierror.ErrorResponse)
	GetContract(ctx context.Context, id int64) (*contract.ContractResponse, apierror.ErrorResponse)
	CreateContract(ctx context.Context, req *contract.ContractRequest) (*contract.ContractResponse, apierror.ErrorResponse)
	UpdateContract(ctx context.Context, id int64, req *contract.UpdateContractRequest) (*contract.ContractResponse, apierror.ErrorResponse)
	DeleteContract(ctx context.Context, id int64) apierror.ErrorResponse
}

type DocumentService interface {
	AssembleContract(ctx context.Context, id int64) (string, apierror.ErrorResponse)
	RenderContract(ctx context.Context, id int64) (*document.GeneratedDocument, apierror.ErrorResponse)
	RenderAndUpload(ctx context.Context, id int64) (*contract.RenderResult, apierror.ErrorResponse)
}

type DefaultContractRoute struct {
	ContractService ContractService
	DocumentService DocumentService
}

func NewContractRoute(contractService ContractService, documentService DocumentService) *DefaultContractRoute {
	return &DefaultContractRoute{
		ContractService: contractService,
		DocumentService: documentService,
	}
}

func (r *DefaultContractRoute) GetContracts(c echo.Context) error {
	contracts, err := r.ContractService.ListContracts(
		c.Request().Context(),
		c.QueryParam("status"),
		c.QueryParam("tipo"),
		c.QueryParam("cliente_id"),
	)
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"contracts": contracts}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultContractRoute) GetContract(c echo.Context) error {
	id, ierr := parseID(c)
	if ierr != nil {
		return c.JSON(ierr.Code(), ierr)
	}

	ct, apierr := r.ContractService.GetContract(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, ct)
}

func (r *DefaultContractRoute) CreateContract(c echo.Context) error {
	var req contract.ContractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	ct, apierr := r.ContractService.CreateContract(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, ct)
}

func (r *DefaultContractRoute) UpdateContract(c echo.Context) error {
	id, ierr := parseID(c)
	if ierr != nil {
		return c.JSON(ierr.Code(), ierr)
	}

	var req contract.UpdateContractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	ct, apierr := r.ContractService.UpdateContract(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, ct)
}

func (r *DefaultContractRoute) DeleteContract(c echo.Context) error {
	id, ierr := parseID(c)
	if ierr != nil {
		return c.JSON(ierr.Code(), ierr)
	}

	if apierr := r.ContractService.DeleteContract(c.Request().Context(), id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultContractRoute) GetText(c echo.Context) error {
	id, ierr := parseID(c)
	if ierr != nil {
		return c.JSON(ierr.Code(), ierr)
	}

	text, apierr := r.DocumentService.AssembleContract(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.String(http.StatusOK, text)
}

// GetPDF streams the rendered contract as an attachment.
func (r *DefaultContractRoute) GetPDF(c echo.Context) error {
	id, ierr := parseID(c)
	if ierr != nil {
		return c.JSON(ierr.Code(), ierr)
	}

	generated, apierr := r.DocumentService.RenderContract(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", generated.Filename))
	return c.Blob(http.StatusOK, "application/pdf", generated.Bytes)
}

func (r *DefaultContractRoute) UploadPDF(c echo.Context) error {
	id, ierr := parseID(c)
	if ierr != nil {
		return c.JSON(ierr.Code(), ierr)
	}

	result, apierr := r.DocumentService.RenderAndUpload(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), result)
	}

	log.Infof("contract %d uploaded by %s", id, utils.RequesterFromContext(c))
	return c.JSON(http.StatusOK, result)
}
