package accept_request

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// allocateSpot выбирает место для заявки: первое место в порядке инвентаря,
// которое удовлетворяет требованию зарядки и не имеет пересекающихся броней
// в запрошенном диапазоне. Возвращает nil, если инвентарь исчерпан.
//
// Требование зарядки одностороннее: заявке с needsCharger=true подходят
// только места с зарядкой, заявке без зарядки подходит любое место.
func allocateSpot(
	spots []*domain.Spot,
	overlapping []*domain.Reservation,
	needsCharger bool,
) *domain.Spot {
	occupied := make(map[int64]struct{}, len(overlapping))
	for _, res := range overlapping {
		occupied[res.Spot.ID] = struct{}{}
	}

	for _, s := range spots {
		if !s.Satisfies(needsCharger) {
			continue
		}
		if _, taken := occupied[s.ID]; taken {
			continue
		}
		return s
	}

	return nil
}
