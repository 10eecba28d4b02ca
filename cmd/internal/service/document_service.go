package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"metrocontratos/cmd/internal/contract"
	"metrocontratos/cmd/internal/document"
	"metrocontratos/cmd/internal/document/render"
	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/infrastructure/aws/storage"
	"metrocontratos/cmd/internal/infrastructure/pdf"
	"metrocontratos/cmd/internal/utils"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

const pdfContentType = "application/pdf"

type LogoLoader interface {
	LoadLogo(ctx context.Context) ([]byte, error)
}

// StoredLogo reads the logo from the object store.
type StoredLogo struct {
	Storage storage.S3Client
	Key     string
}

func (l StoredLogo) LoadLogo(ctx context.Context) ([]byte, error) {
	return l.Storage.DownloadFile(ctx, l.Key)
}

type DocumentService struct {
	Contracts *ContractService
	Assembler *document.Assembler
	Logo      LogoLoader
	Storage   storage.S3Client
	Now       func() time.Time
}

func NewDocumentService(
	contracts *ContractService,
	assembler *document.Assembler,
	logo LogoLoader,
	s3 storage.S3Client,
) *DocumentService {
	return &DocumentService{
		Contracts: contracts,
		Assembler: assembler,
		Logo:      logo,
		Storage:   s3,
		Now:       time.Now,
	}
}

// AssembleContract returns the plain text of a stored contract.
func (d *DocumentService) AssembleContract(ctx context.Context, id int64) (string, apierror.ErrorResponse) {
	c, apiErr := d.Contracts.FindContract(ctx, id)
	if apiErr != nil {
		return "", apiErr
	}

	text, err := d.Assembler.AssembleText(ctx, c)
	if err != nil {
		log.Errorf("failed to assemble contract %d: %v", id, err)
		return "", apierror.ProfileUnavailableError
	}
	return text, nil
}

// RenderContractPDF lays out and draws c. A nil profile is resolved through
// the assembler's profile source. The returned bytes have been parsed back and
// are never partial.
func (d *DocumentService) RenderContractPDF(ctx context.Context, c *entity.Contract, profile *entity.CompanyProfile) (*document.GeneratedDocument, error) {
	var doc *document.Document
	if profile != nil {
		doc = d.Assembler.AssembleWith(c, *profile)
	} else {
		var err error
		if doc, err = d.Assembler.Assemble(ctx, c); err != nil {
			return nil, err
		}
	}

	logo := d.loadLogo(ctx)
	canvas := pdf.NewCanvas(doc.Title, d.now())
	pages := render.Paginate(canvas, doc, logo)

	data, err := canvas.Render(pages, logo)
	if err != nil {
		return nil, fmt.Errorf("render contract %s: %w", c.Number, err)
	}
	if err := pdf.Validate(data, len(pages)); err != nil {
		return nil, fmt.Errorf("render contract %s: %w", c.Number, err)
	}

	clientName := ""
	if c.Client != nil {
		clientName = c.Client.LegalName
	}
	return &document.GeneratedDocument{
		Bytes:    data,
		Filename: document.Filename(c.Number, clientName),
		Pages:    len(pages),
	}, nil
}

// RenderContract renders a stored contract for download.
func (d *DocumentService) RenderContract(ctx context.Context, id int64) (*document.GeneratedDocument, apierror.ErrorResponse) {
	c, apiErr := d.Contracts.FindContract(ctx, id)
	if apiErr != nil {
		return nil, apiErr
	}

	generated, err := d.RenderContractPDF(ctx, c, nil)
	if err != nil {
		return nil, renderError(id, err)
	}
	return generated, nil
}

// RenderAndUpload renders a stored contract, uploads it and records its URL.
// The result is always filled in, also on failure.
func (d *DocumentService) RenderAndUpload(ctx context.Context, id int64) (*contract.RenderResult, apierror.ErrorResponse) {
	if d.Storage == nil {
		return failed(apierror.StorageNotConfiguredError)
	}

	c, apiErr := d.Contracts.FindContract(ctx, id)
	if apiErr != nil {
		return failed(apiErr)
	}

	generated, err := d.RenderContractPDF(ctx, c, nil)
	if err != nil {
		return failed(renderError(id, err))
	}

	key := document.ObjectKey(c.Number, generated.Filename)
	url, err := d.Storage.UploadFile(ctx, generated.Bytes, key, pdfContentType)
	if err != nil {
		log.Errorf("failed to upload contract %d to %s: %v", id, key, err)
		return &contract.RenderResult{Filename: generated.Filename, Error: err.Error()}, apierror.UploadError
	}

	if err := d.Contracts.ContractRepo.UpdatePDFURL(ctx, c.ID, url, utils.NowUTC()); err != nil {
		// The file is stored; only the link on the row is missing.
		log.Errorf("failed to record pdf url of contract %d: %v", id, err)
		return &contract.RenderResult{Filename: generated.Filename, URL: url, Error: "pdf url could not be saved"}, apierror.InternalServerError
	}

	log.Infof("contract %s rendered (%d pages) and uploaded to %s", c.Number, generated.Pages, key)
	return &contract.RenderResult{Success: true, URL: url, Filename: generated.Filename}, nil
}

// loadLogo never fails: any problem selects the text header.
func (d *DocumentService) loadLogo(ctx context.Context) *render.Image {
	if d.Logo == nil {
		return nil
	}

	data, err := d.Logo.LoadLogo(ctx)
	if err != nil {
		log.Warnf("logo unavailable, using text header: %v", err)
		return nil
	}

	logo, err := pdf.DecodeLogo(data)
	if err != nil {
		log.Warnf("logo unusable, using text header: %v", err)
		return nil
	}
	return logo
}

func (d *DocumentService) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func renderError(id int64, err error) apierror.ErrorResponse {
	if errors.Is(err, document.ErrProfileUnavailable) {
		log.Errorf("company profile unavailable for contract %d: %v", id, err)
		return apierror.ProfileUnavailableError
	}
	log.Errorf("failed to render contract %d: %v", id, err)
	return apierror.DocumentRenderError
}

func failed(apiErr apierror.ErrorResponse) (*contract.RenderResult, apierror.ErrorResponse) {
	msg := "request failed"
	if e, ok := apiErr.(*apierror.APIError); ok {
		msg = e.Message
	}
	return &contract.RenderResult{Error: msg}, apiErr
}
