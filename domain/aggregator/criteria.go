package aggregator

import (
	"github.com/lootex/goaggregator/domain/order"
	"github.com/lootex/goaggregator/domain/seaport"
)

// GetCriteriaResolvers binds collection offers to the concrete token ids
// chosen at fulfillment time. Only consideration side criteria is
// supported, offer side resolution is intentionally out of scope, and
// proofs stay empty because orders accept any identifier rather than a
// merkle-restricted set.
func GetCriteriaResolvers(orders []*order.Order) []seaport.CriteriaResolver {
	resolvers := []seaport.CriteriaResolver{}
	if len(orders) == 0 || orders[0].OfferType != order.OfferTypeCollection {
		return resolvers
	}
	for orderIndex, o := range orders {
		for criteriaIndex, criteria := range o.ConsiderationCriteria {
			resolvers = append(resolvers, seaport.CriteriaResolver{
				OrderIndex:    orderIndex,
				Side:          seaport.SideConsideration,
				Index:         criteriaIndex,
				Identifier:    criteria.Identifier,
				CriteriaProof: []string{},
			})
		}
	}
	return resolvers
}
