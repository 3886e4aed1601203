package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking reserves one slot of a treatment on a date for a patient.
// (Treatment, Date, Patient) identifies a booking.
type Booking struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Treatment string                 `bson:"treatment" json:"treatment" binding:"required"`
	Date      string                 `bson:"date" json:"date" binding:"required"`
	Slot      string                 `bson:"slot" json:"slot" binding:"required"`
	Patient   string                 `bson:"patient" json:"patient" binding:"required,email"`
	Extra     map[string]interface{} `bson:",inline" json:"-"`
}

type bookingFields Booking

func (b Booking) MarshalJSON() ([]byte, error) {
	return joinDocument(bookingFields(b), b.Extra)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	extra, err := splitDocument(data, (*bookingFields)(b), "treatment", "date", "slot", "patient")
	if err != nil {
		return err
	}
	b.Extra = extra
	return nil
}

// StringField returns the string value of an extra field, or "".
func (b *Booking) StringField(key string) string {
	s, _ := b.Extra[key].(string)
	return s
}
