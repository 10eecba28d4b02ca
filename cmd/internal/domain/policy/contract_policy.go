package policy

import (
	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/utils/apierror"
)

// ContractPolicy encapsulates the business rules for removing records.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
type ContractPolicy struct{}

func NewContractPolicy() *ContractPolicy {
	return &ContractPolicy{}
}

// CanDelete only lets drafts and cancelled contracts go. Anything that was in
// force has to be cancelled first so its history is kept.
func (p *ContractPolicy) CanDelete(c *entity.Contract) apierror.ErrorResponse {
	if c == nil {
		return apierror.ContractNotFoundError
	}

	switch c.Status {
	case entity.StatusDraft, entity.StatusCancelled:
		return nil
	default:
		return apierror.ContractInForceError
	}
}
