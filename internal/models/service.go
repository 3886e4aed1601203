package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a treatment offered by the clinic with its daily slot labels.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id" yaml:"-"`
	Name  string             `bson:"name" json:"name" yaml:"name"`
	Price float64            `bson:"price" json:"price" yaml:"price"`
	Slots []string           `bson:"slots" json:"slots" yaml:"slots"`
}

// ServiceName is the name-only projection of a Service.
type ServiceName struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `bson:"name" json:"name"`
}
