package models

const (
	BookingSourceWalkin    = "walkin"
	BookingSourceOTA       = "ota"
	BookingSourceCorporate = "corporate"
	BookingSourcePhone     = "phone"
	BookingSourceWebsite   = "website"
)

const (
	BookingStatusBooked     = "booked"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

// Booking is a room reservation for a guest. GuestID is not checked against stored
// guests and CheckOut may precede CheckIn.
type Booking struct {
	GuestID    *string    `json:"guest_id" validate:"required"`
	RoomNumber *string    `json:"room_number" validate:"required"`
	CheckIn    *Timestamp `json:"check_in" validate:"required"`
	CheckOut   *Timestamp `json:"check_out" validate:"required"`
	Rate       *float64   `json:"rate" validate:"required,gte=0"`
	Source     *string    `json:"source" validate:"omitempty,oneof=walkin ota corporate phone website"`
	Notes      *string    `json:"notes"`
	Status     *string    `json:"status" validate:"omitempty,oneof=booked checked_in checked_out cancelled"`
}

func ValidateBooking(raw map[string]any) (*Booking, error) {
	r := newFieldReader(raw)
	b := &Booking{
		GuestID:    r.str("guest_id"),
		RoomNumber: r.str("room_number"),
		CheckIn:    r.timestamp("check_in"),
		CheckOut:   r.timestamp("check_out"),
		Rate:       r.number("rate"),
		Source:     r.str("source"),
		Notes:      r.str("notes"),
		Status:     r.str("status"),
	}
	if err := r.check(KindBooking, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Booking) Kind() Kind { return KindBooking }

func (b *Booking) StorageRecord() map[string]any {
	rec := map[string]any{
		"guest_id":    strOrNil(b.GuestID),
		"room_number": strOrNil(b.RoomNumber),
		"check_in":    nil,
		"check_out":   nil,
		"rate":        nil,
		"source":      strOrDefault(b.Source, BookingSourceWalkin),
		"notes":       strOrNil(b.Notes),
		"status":      strOrDefault(b.Status, BookingStatusBooked),
	}
	if b.CheckIn != nil {
		rec["check_in"] = b.CheckIn.String()
	}
	if b.CheckOut != nil {
		rec["check_out"] = b.CheckOut.String()
	}
	if b.Rate != nil {
		rec["rate"] = *b.Rate
	}
	return rec
}
