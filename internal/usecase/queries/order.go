package queries

import (
	"context"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderQueries interface {
	GetByID(ctx context.Context, orderID, userID uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
}

type orderQueriesImpl struct {
	orderReads OrderReads
}

func NewOrderQueries(orderReads OrderReads) OrderQueries {
	return &orderQueriesImpl{orderReads: orderReads}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, orderID, userID uuid.UUID) (*OrderView, error) {
	view, err := q.orderReads.ByID(ctx, orderID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error) {
	views, err := q.orderReads.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
