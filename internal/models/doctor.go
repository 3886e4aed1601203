package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Name      string                 `bson:"name" json:"name" binding:"required"`
	Email     string                 `bson:"email" json:"email" binding:"required,email"`
	Specialty string                 `bson:"specialty" json:"specialty"`
	Extra     map[string]interface{} `bson:",inline" json:"-"`
}

type doctorFields Doctor

func (d Doctor) MarshalJSON() ([]byte, error) {
	return joinDocument(doctorFields(d), d.Extra)
}

func (d *Doctor) UnmarshalJSON(data []byte) error {
	extra, err := splitDocument(data, (*doctorFields)(d), "name", "email", "specialty")
	if err != nil {
		return err
	}
	d.Extra = extra
	return nil
}
