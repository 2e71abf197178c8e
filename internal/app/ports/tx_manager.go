package ports

import "context"

// TxManager serializes read-modify-write cycles so a decay tick and a user
// action can never interleave on the same snapshot.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
