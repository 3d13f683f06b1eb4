package availability

import (
	"github.com/tspi-facilities/roomreserve/services/reservation-service/internal/interval"
)

// Grid returns the bookable slots of fixed length between open and close
// (HH:MM, half-open) that do not overlap any busy interval. Slots are aligned
// to the opening time.
func Grid(open, close string, slotMinutes int, busy []interval.Interval) ([]interval.Interval, error) {
	window, err := interval.Parse(open, close)
	if err != nil {
		return nil, err
	}
	if slotMinutes <= 0 {
		return nil, interval.ErrInvalidInterval
	}

	start := toMinutes(window.Start)
	end := toMinutes(window.End)

	var slots []interval.Interval
	for t := start; t+slotMinutes <= end; t += slotMinutes {
		slot := interval.Interval{Start: toClock(t), End: toClock(t + slotMinutes)}
		if !overlapsAny(slot, busy) {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

func overlapsAny(slot interval.Interval, busy []interval.Interval) bool {
	for _, b := range busy {
		if slot.Overlaps(b) {
			return true
		}
	}
	return false
}

// toMinutes assumes a validated HH:MM string.
func toMinutes(clock string) int {
	hour := int(clock[0]-'0')*10 + int(clock[1]-'0')
	minute := int(clock[3]-'0')*10 + int(clock[4]-'0')
	return hour*60 + minute
}

func toClock(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	return string([]byte{
		byte('0' + h/10),
		byte('0' + h%10),
		':',
		byte('0' + m/10),
		byte('0' + m%10),
	})
}
