package policy

import (
	"testing"

	"metrocontratos/cmd/internal/domain/entity"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
)

func TestCanDelete(t *testing.T) {
	p := NewContractPolicy()

	for _, status := range entity.ContractStatuses {
		t.Run(string(status), func(t *testing.T) {
			err := p.CanDelete(&entity.Contract{Status: status})
			switch status {
			case entity.StatusDraft, entity.StatusCancelled:
				assert.Nil(t, err)
			default:
				assert.Equal(t, apierror.ContractInForceError, err)
			}
		})
	}

	assert.Equal(t, apierror.ContractNotFoundError, p.CanDelete(nil))
}
