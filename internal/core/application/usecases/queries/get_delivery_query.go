package queries

import (
	"errors"

	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New("GetDeliveryQuery must be created via NewGetDeliveryQuery constructor")

type GetDeliveryQuery struct {
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(number kernel.OrderNumber) (GetDeliveryQuery, error) {
	if err := number.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) Number() kernel.OrderNumber {
	return q.number
}
