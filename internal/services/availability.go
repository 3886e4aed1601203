package services

import "github.com/harentsoaR/doctors-portal/internal/models"

// AvailableSlots returns a copy of services in which every slot list holds
// only the slots not yet booked on date. Bookings for other dates are
// ignored. Service order and slot order are preserved; inputs are not
// modified.
func AvailableSlots(date string, services []models.Service, bookings []models.Booking) []models.Service {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if b.Date != date {
			continue
		}
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	available := make([]models.Service, 0, len(services))
	for _, svc := range services {
		taken := booked[svc.Name]
		free := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, ok := taken[slot]; !ok {
				free = append(free, slot)
			}
		}
		svc.Slots = free
		available = append(available, svc)
	}
	return available
}
