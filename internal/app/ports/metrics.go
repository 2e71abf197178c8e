package ports

import "pawledger/internal/domain/pet"

type ActionMetrics interface {
	RecordSuccess(resultCode pet.ResultCode)
	RecordConflict()
	RecordFailure()
}
